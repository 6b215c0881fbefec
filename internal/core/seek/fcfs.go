package seek

// fcfs services requests in arrival order, unchanged.
type fcfs struct{}

func (fcfs) Name() string { return "fcfs" }

func (fcfs) Plan(queue []int, head int, _ Direction, _ int) []int {
	order := make([]int, 0, len(queue)+1)
	order = append(order, head)
	return append(order, queue...)
}
