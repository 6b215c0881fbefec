package seek

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Schedule validates req, dispatches to the selected strategy and
// accounts the total seek distance of the resulting order. It is a pure
// function of its inputs: no state survives between calls and the
// caller's queue slice is never mutated, so concurrent invocations are
// independently safe.
//
// All validation happens before any strategy runs; on error no partial
// order is returned.
func Schedule(req Request) (Result, error) {
	strat, err := ForPolicy(req.Policy)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(req.Policy))
	}

	bound := req.Bound
	if bound == 0 {
		bound = DefaultBound
	}
	if bound < 0 {
		return Result{}, fmt.Errorf("%w: bound %d is negative", ErrPositionOutOfRange, bound)
	}

	dir := req.Direction
	if req.Policy.DirectionSensitive() {
		switch dir {
		case DirectionUp, DirectionDown:
		case "":
			// Documented default, not silent fallback behavior.
			dir = DirectionUp
			log.Debug().Str("policy", string(req.Policy)).Msg("no direction given, defaulting to up")
		default:
			return Result{}, fmt.Errorf("%w: %q", ErrUnknownDirection, string(dir))
		}
	}

	if req.Head < 0 || req.Head > bound {
		return Result{}, fmt.Errorf("%w: head %d not in [0, %d]", ErrPositionOutOfRange, req.Head, bound)
	}
	for _, pos := range req.Queue {
		if pos < 0 || pos > bound {
			return Result{}, fmt.Errorf("%w: request %d not in [0, %d]", ErrPositionOutOfRange, pos, bound)
		}
	}

	queue := make([]int, len(req.Queue))
	copy(queue, req.Queue)

	order := strat.Plan(queue, req.Head, dir, bound)
	res := Result{Order: order, TotalDistance: totalDistance(order)}

	log.Debug().
		Str("policy", strat.Name()).
		Int("requests", len(req.Queue)).
		Int("total_distance", res.TotalDistance).
		Msg("schedule computed")

	return res, nil
}
