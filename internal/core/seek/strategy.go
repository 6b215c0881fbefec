package seek

// Strategy plans the visit order for one policy. Plan receives a private
// copy of the queue it may reorder freely, the validated head position,
// the resolved direction and the inclusive upper bound. It returns the
// full movement order starting at head; distance accounting happens
// centrally in Schedule, never inside a strategy.
type Strategy interface {
	Name() string
	Plan(queue []int, head int, dir Direction, bound int) []int
}

var strategies = map[Policy]Strategy{
	PolicyFCFS:  fcfs{},
	PolicySSTF:  sstf{},
	PolicySCAN:  scan{},
	PolicyCSCAN: cscan{},
	PolicyLOOK:  look{},
}

// ForPolicy returns the strategy registered for p.
func ForPolicy(p Policy) (Strategy, error) {
	s, ok := strategies[p]
	if !ok {
		return nil, ErrUnknownPolicy
	}
	return s, nil
}

// Policies lists the supported policies in presentation order.
func Policies() []Policy {
	return []Policy{PolicyFCFS, PolicySSTF, PolicySCAN, PolicyCSCAN, PolicyLOOK}
}
