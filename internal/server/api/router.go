package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Tarakreddy011/Advance-Disk-Scheduling-Simulator/internal/core/seek"
	"github.com/Tarakreddy011/Advance-Disk-Scheduling-Simulator/internal/report"
)

type RouterConfig struct {
	Bound            int
	DefaultPolicy    seek.Policy
	DefaultDirection seek.Direction
}

func SetupRouter(e *echo.Echo, cfg RouterConfig) {
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST"},
	}))
	e.Use(echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	handler := NewScheduleHandler(cfg.Bound, cfg.DefaultPolicy, cfg.DefaultDirection)

	v1 := e.Group("/api/v1")
	config := huma.DefaultConfig("Disk Scheduling Simulator API", "1.0.0")
	config.Servers = []*huma.Server{{URL: "/api/v1"}}
	config.Info.Description = "Disk head scheduling decision engine for simulation and teaching"

	InitErrors()
	api := humaecho.NewWithGroup(e, v1, config)

	huma.Register(api, huma.Operation{
		OperationID: "schedule",
		Method:      http.MethodPost,
		Path:        "/schedule",
		Summary:     "Compute head visit order and total seek distance",
		Tags:        []string{"Schedule"},
	}, handler.Schedule)

	huma.Register(api, huma.Operation{
		OperationID: "list-policies",
		Method:      http.MethodGet,
		Path:        "/policies",
		Summary:     "List supported scheduling policies",
		Tags:        []string{"Schedule"},
	}, handler.Policies)

	// SVG output doesn't fit huma's JSON-shaped responses; served on the
	// echo group directly.
	v1.GET("/schedule/plot", handler.plot)
}

func (h *ScheduleHandler) plot(c echo.Context) error {
	params := ScheduleParams{
		Policy:    c.QueryParam("policy"),
		Direction: c.QueryParam("direction"),
	}

	for _, part := range strings.Split(c.QueryParam("queue"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pos, err := strconv.Atoi(part)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"success": false, "error": "queue must be a comma-separated list of integers",
			})
		}
		params.Queue = append(params.Queue, pos)
	}

	if v := c.QueryParam("head"); v != "" {
		head, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"success": false, "error": "head must be an integer",
			})
		}
		params.Head = head
	}
	if v := c.QueryParam("bound"); v != "" {
		bound, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"success": false, "error": "bound must be an integer",
			})
		}
		params.Bound = bound
	}

	dto, err := h.compute(params)
	if err != nil {
		status := http.StatusInternalServerError
		var se huma.StatusError
		if errors.As(err, &se) {
			status = se.GetStatus()
		}
		return c.JSON(status, map[string]any{"success": false, "error": err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentType, "image/svg+xml")
	c.Response().WriteHeader(http.StatusOK)
	return report.WriteSVG(c.Response(), seek.Policy(dto.Policy),
		seek.Result{Order: dto.Order, TotalDistance: dto.TotalDistance}, dto.Bound)
}
