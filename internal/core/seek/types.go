package seek

// DefaultBound is the conventional maximum cylinder index of a simulated
// disk; positions are addressed in [0, bound].
const DefaultBound = 199

// Policy identifies a head scheduling algorithm.
type Policy string

const (
	PolicyFCFS  Policy = "fcfs"
	PolicySSTF  Policy = "sstf"
	PolicySCAN  Policy = "scan"
	PolicyCSCAN Policy = "cscan"
	PolicyLOOK  Policy = "look"
)

// DirectionSensitive reports whether the policy's visit order depends on
// the head's initial travel direction.
func (p Policy) DirectionSensitive() bool {
	switch p {
	case PolicySCAN, PolicyCSCAN, PolicyLOOK:
		return true
	}
	return false
}

// Direction is the head's initial travel direction for SCAN, C-SCAN and
// LOOK. FCFS and SSTF ignore it.
type Direction string

const (
	DirectionUp   Direction = "up"   // toward increasing cylinder numbers
	DirectionDown Direction = "down" // toward decreasing cylinder numbers
)

// Request carries one scheduling invocation. Queue is read-only to the
// engine; strategies work on a copy so caller state is never mutated.
type Request struct {
	Policy    Policy
	Queue     []int
	Head      int
	Direction Direction // optional; empty defaults to DirectionUp for direction-sensitive policies
	Bound     int       // 0 means DefaultBound
}

// Result is the planned head movement. Order always starts with the
// initial head position and includes any synthetic boundary visits.
// TotalDistance is the sum of absolute differences between consecutive
// Order entries, whichever policy produced them.
type Result struct {
	Order         []int
	TotalDistance int
}
