package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tarakreddy011/Advance-Disk-Scheduling-Simulator/internal/core/seek"
)

func TestWriteSummary(t *testing.T) {
	res, err := seek.Schedule(seek.Request{
		Policy:    seek.PolicySCAN,
		Queue:     []int{98, 183, 37, 122, 14, 124, 65, 67},
		Head:      53,
		Direction: seek.DirectionUp,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, seek.PolicySCAN, seek.DirectionUp, res))

	out := buf.String()
	assert.Contains(t, out, "SCAN")
	assert.Contains(t, out, "direction: up")
	assert.Contains(t, out, "53 -> 65 -> 67 -> 98 -> 122 -> 124 -> 183 -> 199 -> 37 -> 14")
	assert.Contains(t, out, "Total seek distance:   331")
	assert.Contains(t, out, "36.78") // 331 over 9 movements
}

func TestWriteSummaryNoDirectionForFCFS(t *testing.T) {
	res, err := seek.Schedule(seek.Request{Policy: seek.PolicyFCFS, Queue: []int{10}, Head: 5})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, seek.PolicyFCFS, "", res))
	assert.NotContains(t, buf.String(), "direction")
}

func TestAverage(t *testing.T) {
	assert.Zero(t, Average(seek.Result{Order: []int{50}}))
	assert.InDelta(t, 7.5, Average(seek.Result{Order: []int{0, 10, 15}, TotalDistance: 15}), 1e-9)
}

func TestWriteSVG(t *testing.T) {
	res, err := seek.Schedule(seek.Request{
		Policy:    seek.PolicyLOOK,
		Queue:     []int{98, 183, 37},
		Head:      53,
		Direction: seek.DirectionUp,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, seek.PolicyLOOK, res, seek.DefaultBound))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "<polyline")
	// One plotted point per order entry.
	assert.Equal(t, len(res.Order), strings.Count(out, "<circle"))
	assert.Contains(t, out, "total=276")
}
