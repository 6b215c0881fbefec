package api

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Tarakreddy011/Advance-Disk-Scheduling-Simulator/internal/core/seek"
	"github.com/Tarakreddy011/Advance-Disk-Scheduling-Simulator/internal/report"
)

// ScheduleHandler serves scheduling computations over HTTP. It carries
// the configured defaults only; every request is computed from scratch.
type ScheduleHandler struct {
	bound            int
	defaultPolicy    seek.Policy
	defaultDirection seek.Direction
}

func NewScheduleHandler(bound int, defaultPolicy seek.Policy, defaultDirection seek.Direction) *ScheduleHandler {
	if bound <= 0 {
		bound = seek.DefaultBound
	}
	return &ScheduleHandler{
		bound:            bound,
		defaultPolicy:    defaultPolicy,
		defaultDirection: defaultDirection,
	}
}

type ScheduleParams struct {
	Policy    string `json:"policy,omitempty" example:"scan" doc:"Scheduling policy: fcfs, sstf, scan, cscan or look"`
	Queue     []int  `json:"queue" doc:"Cylinder positions in arrival order"`
	Head      int    `json:"head" doc:"Current head position"`
	Direction string `json:"direction,omitempty" example:"up" doc:"Initial travel direction for scan/cscan/look"`
	Bound     int    `json:"bound,omitempty" doc:"Maximum cylinder index; 0 uses the server default"`
}

type ScheduleInput struct {
	Body ScheduleParams
}

type ScheduleDTO struct {
	Policy          string      `json:"policy"`
	Direction       string      `json:"direction,omitempty"`
	Bound           int         `json:"bound"`
	Order           []int       `json:"order"`
	Steps           []seek.Step `json:"steps"`
	TotalDistance   int         `json:"total_distance"`
	AverageDistance float64     `json:"average_distance"`
}

func (h *ScheduleHandler) Schedule(_ context.Context, in *ScheduleInput) (*DataOutput[ScheduleDTO], error) {
	dto, err := h.compute(in.Body)
	if err != nil {
		return nil, err
	}
	return OK(dto), nil
}

// compute resolves defaults, runs the engine and maps core validation
// errors onto HTTP statuses. Shared by the JSON endpoint and the SVG
// plot route.
func (h *ScheduleHandler) compute(p ScheduleParams) (ScheduleDTO, error) {
	policy := h.defaultPolicy
	if p.Policy != "" {
		parsed, err := seek.ParsePolicy(p.Policy)
		if err != nil {
			return ScheduleDTO{}, huma.Error400BadRequest(err.Error())
		}
		policy = parsed
	}

	dir := seek.Direction("")
	if p.Direction != "" {
		parsed, err := seek.ParseDirection(p.Direction)
		if err != nil {
			return ScheduleDTO{}, huma.Error422UnprocessableEntity(err.Error())
		}
		dir = parsed
	} else if policy.DirectionSensitive() {
		dir = h.defaultDirection
	}

	bound := p.Bound
	if bound <= 0 {
		bound = h.bound
	}

	res, err := seek.Schedule(seek.Request{
		Policy:    policy,
		Queue:     p.Queue,
		Head:      p.Head,
		Direction: dir,
		Bound:     bound,
	})
	if err != nil {
		switch {
		case errors.Is(err, seek.ErrUnknownPolicy):
			return ScheduleDTO{}, huma.Error400BadRequest(err.Error())
		case errors.Is(err, seek.ErrPositionOutOfRange), errors.Is(err, seek.ErrUnknownDirection):
			return ScheduleDTO{}, huma.Error422UnprocessableEntity(err.Error())
		}
		return ScheduleDTO{}, err
	}

	dto := ScheduleDTO{
		Policy:          string(policy),
		Bound:           bound,
		Order:           res.Order,
		Steps:           seek.Steps(res.Order),
		TotalDistance:   res.TotalDistance,
		AverageDistance: report.Average(res),
	}
	if policy.DirectionSensitive() {
		dto.Direction = string(dir)
	}
	return dto, nil
}

type PolicyDTO struct {
	Name               string `json:"name"`
	DirectionSensitive bool   `json:"direction_sensitive"`
}

type EmptyInput struct{}

func (h *ScheduleHandler) Policies(_ context.Context, _ *EmptyInput) (*DataOutput[[]PolicyDTO], error) {
	policies := seek.Policies()
	dtos := make([]PolicyDTO, 0, len(policies))
	for _, p := range policies {
		dtos = append(dtos, PolicyDTO{
			Name:               string(p),
			DirectionSensitive: p.DirectionSensitive(),
		})
	}
	return OK(dtos), nil
}
