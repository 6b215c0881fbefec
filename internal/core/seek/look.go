package seek

// look sweeps like scan but reverses right after the last request in the
// travel direction instead of running out to the disk edge, so the order
// never contains synthetic boundary entries.
type look struct{}

func (look) Name() string { return "look" }

func (look) Plan(queue []int, head int, dir Direction, _ int) []int {
	below, above := splitAround(queue, head)

	order := make([]int, 0, len(queue)+1)
	order = append(order, head)

	if dir == DirectionDown {
		for i := len(below) - 1; i >= 0; i-- {
			order = append(order, below[i])
		}
		return append(order, above...)
	}

	order = append(order, above...)
	for i := len(below) - 1; i >= 0; i-- {
		order = append(order, below[i])
	}
	return order
}
