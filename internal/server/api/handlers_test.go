package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tarakreddy011/Advance-Disk-Scheduling-Simulator/internal/core/seek"
)

func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)

	handler := NewScheduleHandler(seek.DefaultBound, seek.PolicyFCFS, seek.DirectionUp)
	huma.Register(api, huma.Operation{
		OperationID: "schedule",
		Method:      http.MethodPost,
		Path:        "/schedule",
	}, handler.Schedule)
	huma.Register(api, huma.Operation{
		OperationID: "list-policies",
		Method:      http.MethodGet,
		Path:        "/policies",
	}, handler.Policies)
	return api
}

func TestScheduleEndpoint(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Post("/schedule", map[string]any{
		"policy":    "scan",
		"queue":     []int{98, 183, 37, 122, 14, 124, 65, 67},
		"head":      53,
		"direction": "up",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Success bool        `json:"success"`
		Data    ScheduleDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Equal(t, "scan", out.Data.Policy)
	assert.Equal(t, "up", out.Data.Direction)
	assert.Equal(t, []int{53, 65, 67, 98, 122, 124, 183, 199, 37, 14}, out.Data.Order)
	assert.Equal(t, 331, out.Data.TotalDistance)
	assert.Len(t, out.Data.Steps, len(out.Data.Order)-1)
}

func TestScheduleEndpointDefaults(t *testing.T) {
	api := newTestAPI(t)

	// No policy: server default (fcfs) applies.
	resp := api.Post("/schedule", map[string]any{
		"queue": []int{10, 30},
		"head":  5,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Data ScheduleDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, "fcfs", out.Data.Policy)
	assert.Empty(t, out.Data.Direction)
	assert.Equal(t, []int{5, 10, 30}, out.Data.Order)
	assert.Equal(t, seek.DefaultBound, out.Data.Bound)
}

func TestScheduleEndpointErrors(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{
			name:       "unknown policy",
			body:       map[string]any{"policy": "elevator", "queue": []int{1}, "head": 0},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown direction",
			body:       map[string]any{"policy": "scan", "queue": []int{1}, "head": 0, "direction": "sideways"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "head out of range",
			body:       map[string]any{"policy": "fcfs", "queue": []int{1}, "head": 9999},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "request out of range",
			body:       map[string]any{"policy": "sstf", "queue": []int{1, 500}, "head": 10},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.Post("/schedule", tt.body)
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestPoliciesEndpoint(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/policies")
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Data []PolicyDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Len(t, out.Data, 5)
	assert.Equal(t, "fcfs", out.Data[0].Name)
	assert.False(t, out.Data[0].DirectionSensitive)
	assert.Equal(t, "cscan", out.Data[3].Name)
	assert.True(t, out.Data[3].DirectionSensitive)
}

func TestPlotRoute(t *testing.T) {
	e := echo.New()
	SetupRouter(e, RouterConfig{
		Bound:            seek.DefaultBound,
		DefaultPolicy:    seek.PolicyFCFS,
		DefaultDirection: seek.DirectionUp,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/plot?policy=look&queue=98,183,37&head=53&direction=up", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), "<polyline")
}

func TestPlotRouteBadQueue(t *testing.T) {
	e := echo.New()
	SetupRouter(e, RouterConfig{Bound: seek.DefaultBound, DefaultPolicy: seek.PolicyFCFS, DefaultDirection: seek.DirectionUp})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/plot?policy=scan&queue=1,two,3&head=0", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
