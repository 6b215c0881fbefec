package seek

// Step is one head movement between consecutive order entries.
type Step struct {
	From     int `json:"from"`
	To       int `json:"to"`
	Distance int `json:"distance"`
}

// Steps decomposes a movement order into individual seeks. Presentation
// layers derive their per-step annotations from this, so they can never
// disagree with totalDistance.
func Steps(order []int) []Step {
	if len(order) < 2 {
		return nil
	}
	steps := make([]Step, 0, len(order)-1)
	for i := 1; i < len(order); i++ {
		steps = append(steps, Step{
			From:     order[i-1],
			To:       order[i],
			Distance: abs(order[i] - order[i-1]),
		})
	}
	return steps
}

// totalDistance sums the absolute differences between consecutive order
// entries. Every strategy's result is costed through this one function;
// boundary visits and wrap jumps carry no special case, they are just
// entries in the order.
func totalDistance(order []int) int {
	total := 0
	for i := 1; i < len(order); i++ {
		total += abs(order[i] - order[i-1])
	}
	return total
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
