package seek

import "sort"

// scan sweeps the head to the physical end of the disk in its travel
// direction, then reverses and services the remaining requests on the
// way back. The boundary stop is recorded only when the sweep actually
// serviced something and didn't already end on the boundary; an empty
// side means no excursion toward it.
type scan struct{}

func (scan) Name() string { return "scan" }

func (scan) Plan(queue []int, head int, dir Direction, bound int) []int {
	below, above := splitAround(queue, head)

	order := make([]int, 0, len(queue)+2)
	order = append(order, head)
	cur := head

	if dir == DirectionDown {
		for i := len(below) - 1; i >= 0; i-- {
			cur = below[i]
			order = append(order, cur)
		}
		if len(below) > 0 && cur != 0 {
			order = append(order, 0)
		}
		return append(order, above...)
	}

	order = append(order, above...)
	if len(above) > 0 {
		cur = above[len(above)-1]
	}
	if len(above) > 0 && cur != bound {
		order = append(order, bound)
	}
	for i := len(below) - 1; i >= 0; i-- {
		order = append(order, below[i])
	}
	return order
}

// splitAround partitions queue into positions at or below head and
// positions strictly above it, both sorted ascending.
func splitAround(queue []int, head int) (below, above []int) {
	for _, pos := range queue {
		if pos <= head {
			below = append(below, pos)
		} else {
			above = append(above, pos)
		}
	}
	sort.Ints(below)
	sort.Ints(above)
	return below, above
}
