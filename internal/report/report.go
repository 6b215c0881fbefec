// Package report renders scheduling results for humans. It consumes the
// engine's movement order and total distance only; nothing in here feeds
// back into the core.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Tarakreddy011/Advance-Disk-Scheduling-Simulator/internal/core/seek"
)

// WriteSummary prints the processing order, the per-seek breakdown and
// the total and average seek distance.
func WriteSummary(w io.Writer, policy seek.Policy, dir seek.Direction, res seek.Result) error {
	header := fmt.Sprintf("Policy: %s", strings.ToUpper(string(policy)))
	if policy.DirectionSensitive() {
		header += fmt.Sprintf(" (direction: %s)", dir)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Order:  %s\n\n", joinPositions(res.Order)); err != nil {
		return err
	}

	steps := seek.Steps(res.Order)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tFROM\tTO\tDISTANCE")
	for i, s := range steps {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", i+1, s.From, s.To, s.Distance)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nTotal seek distance:   %d\n", res.TotalDistance); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Average seek distance: %.2f\n", Average(res))
	return err
}

// Average is the mean seek distance per movement. Zero when the head
// never moved.
func Average(res seek.Result) float64 {
	moves := len(res.Order) - 1
	if moves <= 0 {
		return 0
	}
	return float64(res.TotalDistance) / float64(moves)
}

func joinPositions(order []int) string {
	parts := make([]string, len(order))
	for i, pos := range order {
		parts[i] = strconv.Itoa(pos)
	}
	return strings.Join(parts, " -> ")
}
