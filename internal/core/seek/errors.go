package seek

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownPolicy is returned for a policy name outside the five
	// supported algorithms.
	ErrUnknownPolicy = errors.New("unknown scheduling policy")

	// ErrUnknownDirection is returned for a non-empty direction value
	// that is neither "up" nor "down".
	ErrUnknownDirection = errors.New("unknown head direction")

	// ErrPositionOutOfRange is returned when the head or any queued
	// request lies outside [0, bound]. Out-of-range input is rejected
	// rather than clamped; clamping would corrupt distance accounting.
	ErrPositionOutOfRange = errors.New("position out of range")
)

// ParsePolicy maps a user-supplied policy name onto a Policy.
// Matching is case-insensitive and tolerates the "c-scan" spelling.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs":
		return PolicyFCFS, nil
	case "sstf":
		return PolicySSTF, nil
	case "scan":
		return PolicySCAN, nil
	case "cscan", "c-scan":
		return PolicyCSCAN, nil
	case "look":
		return PolicyLOOK, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// ParseDirection maps a user-supplied direction onto a Direction. The
// empty string is allowed and means "use the documented default"; the
// caller decides what that default is.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "up", "increasing", "right":
		return DirectionUp, nil
	case "down", "decreasing", "left":
		return DirectionDown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
