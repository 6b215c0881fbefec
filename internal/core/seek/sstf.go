package seek

// sstf repeatedly services the pending request closest to the current
// head position. Ties go to the earliest-submitted remaining request,
// which keeps the order deterministic under duplicate distances.
// Quadratic by design; the selection scan is the whole algorithm.
type sstf struct{}

func (sstf) Name() string { return "sstf" }

func (sstf) Plan(queue []int, head int, _ Direction, _ int) []int {
	order := make([]int, 0, len(queue)+1)
	order = append(order, head)

	taken := make([]bool, len(queue))
	cur := head
	for range queue {
		best := -1
		for i, pos := range queue {
			if taken[i] {
				continue
			}
			// Strict < keeps the leftmost remaining request on ties.
			if best < 0 || abs(pos-cur) < abs(queue[best]-cur) {
				best = i
			}
		}
		taken[best] = true
		cur = queue[best]
		order = append(order, cur)
	}
	return order
}
