package seek

import "sort"

// cscan sweeps one way like scan but never services on the return trip:
// after finishing the sweep it completes travel to the near boundary
// (recorded unless the head is already there) and jumps to the far
// boundary, continuing in the original direction. Once any request
// commits a direction the wrap jump costs a full bound span and is
// charged exactly once, even when no request waits on the far side;
// that fixed cost is the defining property of the policy. An empty
// queue commits nothing and moves nothing.
type cscan struct{}

func (cscan) Name() string { return "cscan" }

func (cscan) Plan(queue []int, head int, dir Direction, bound int) []int {
	// No requests means no committed direction: the head stays put and
	// neither the boundary excursion nor the wrap is charged.
	if len(queue) == 0 {
		return []int{head}
	}

	var first, second []int
	for _, pos := range queue {
		if dir == DirectionDown {
			if pos <= head {
				first = append(first, pos)
			} else {
				second = append(second, pos)
			}
		} else {
			if pos >= head {
				first = append(first, pos)
			} else {
				second = append(second, pos)
			}
		}
	}
	sort.Ints(first)
	sort.Ints(second)

	order := make([]int, 0, len(queue)+3)
	order = append(order, head)
	cur := head

	if dir == DirectionDown {
		for i := len(first) - 1; i >= 0; i-- {
			cur = first[i]
			order = append(order, cur)
		}
		if cur != 0 {
			order = append(order, 0)
		}
		order = append(order, bound)
		for i := len(second) - 1; i >= 0; i-- {
			order = append(order, second[i])
		}
		return order
	}

	order = append(order, first...)
	if len(first) > 0 {
		cur = first[len(first)-1]
	}
	if cur != bound {
		order = append(order, bound)
	}
	order = append(order, 0)
	return append(order, second...)
}
