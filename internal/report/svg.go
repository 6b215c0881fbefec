package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Tarakreddy011/Advance-Disk-Scheduling-Simulator/internal/core/seek"
)

const (
	svgWidth    = 840
	svgHeight   = 480
	svgMarginX  = 60
	svgMarginY  = 40
	svgFontSize = 11
)

// WriteSVG renders the head movement as a step-vs-position polyline:
// x is the visit index, y the cylinder position, each segment labeled
// with its seek distance.
func WriteSVG(w io.Writer, policy seek.Policy, res seek.Result, bound int) error {
	if bound <= 0 {
		bound = seek.DefaultBound
	}

	plotW := float64(svgWidth - 2*svgMarginX)
	plotH := float64(svgHeight - 2*svgMarginY)
	steps := len(res.Order) - 1
	if steps < 1 {
		steps = 1
	}

	x := func(i int) float64 {
		return svgMarginX + plotW*float64(i)/float64(steps)
	}
	y := func(pos int) float64 {
		return svgMarginY + plotH*(1-float64(pos)/float64(bound))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		svgWidth, svgHeight, svgWidth, svgHeight)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="white"/>`+"\n", svgWidth, svgHeight)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="14" font-family="monospace">%s  total=%d</text>`+"\n",
		svgMarginX, svgMarginY-16, strings.ToUpper(string(policy)), res.TotalDistance)

	// Axes: position on y (0 at the bottom edge of the plot, bound at the top).
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`+"\n",
		svgMarginX, svgMarginY, svgMarginX, svgHeight-svgMarginY)
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`+"\n",
		svgMarginX, svgHeight-svgMarginY, svgWidth-svgMarginX, svgHeight-svgMarginY)
	fmt.Fprintf(&b, `<text x="%d" y="%.1f" font-size="%d" font-family="monospace" text-anchor="end">%d</text>`+"\n",
		svgMarginX-6, y(bound)+4, svgFontSize, bound)
	fmt.Fprintf(&b, `<text x="%d" y="%.1f" font-size="%d" font-family="monospace" text-anchor="end">0</text>`+"\n",
		svgMarginX-6, y(0)+4, svgFontSize)

	if len(res.Order) > 0 {
		points := make([]string, len(res.Order))
		for i, pos := range res.Order {
			points[i] = fmt.Sprintf("%.1f,%.1f", x(i), y(pos))
		}
		fmt.Fprintf(&b, `<polyline points="%s" fill="none" stroke="steelblue" stroke-width="2"/>`+"\n",
			strings.Join(points, " "))

		for i, pos := range res.Order {
			fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="3" fill="steelblue"/>`+"\n", x(i), y(pos))
			fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="%d" font-family="monospace" text-anchor="middle">%d</text>`+"\n",
				x(i), y(pos)-8, svgFontSize, pos)
		}
		for i, s := range seek.Steps(res.Order) {
			midX := (x(i) + x(i+1)) / 2
			midY := (y(s.From) + y(s.To)) / 2
			fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="%d" font-family="monospace" fill="gray">%d</text>`+"\n",
				midX+4, midY, svgFontSize, s.Distance)
		}
	}

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}
