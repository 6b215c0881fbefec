package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueue(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "98,183,37", want: []int{98, 183, 37}},
		{in: " 14, 124 ,65 ", want: []int{14, 124, 65}},
		{in: "42", want: []int{42}},
		{in: "1,,2", want: []int{1, 2}},
		{in: "", want: nil},
		{in: "1,two", wantErr: true},
		{in: "3.5", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseQueue(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
