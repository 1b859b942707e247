// Package visual renders generator output as SVG, in the spirit of plotting
// pairs of random bytes to spot structure by eye.
package visual

import (
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/tutils/tprng/dice"
	"github.com/tutils/tprng/prng"
)

const (
	plotSize = 256
	margin   = 20
	legend   = 40
)

// ErrInvalidPoints indicates a non-positive point count.
var ErrInvalidPoints = errors.New("point count must be positive")

// Scatter draws n points whose x and y coordinates are two successive
// keystream bytes from g. A good generator fills the square evenly; lattice
// lines or clusters expose correlations between consecutive draws.
func Scatter(w io.Writer, g prng.Generator, n int, title string) error {
	if n <= 0 {
		return ErrInvalidPoints
	}
	width := plotSize + 2*margin
	height := plotSize + 2*margin + legend

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(title)
	canvas.Desc("Successive keystream byte pairs")
	canvas.Rect(margin, margin, plotSize, plotSize, "fill:white; stroke:gray")

	canvas.Gstyle("stroke:none; fill-opacity:0.5")
	for i := 0; i < n; i++ {
		x := int(g.NormalizedByte())
		y := int(g.NormalizedByte())
		canvas.Circle(margin+x, margin+(plotSize-1-y), 2, canvas.RGB(127, 0, 0))
	}
	canvas.Gend()

	canvas.Gstyle("text-anchor:middle; font-size:14; font-family:sans-serif")
	canvas.Text(width/2, height-legend/2, fmt.Sprintf("%s, n=%d", title, n))
	canvas.Gend()
	canvas.End()
	return nil
}

// Histogram draws one bar per die face of result, scaled to the most
// frequent face, with a guide line at the count a fair die would give.
func Histogram(w io.Writer, result dice.Result, title string) error {
	if len(result.Counts) == 0 {
		return ErrInvalidPoints
	}
	maxCount := 0
	for _, c := range result.Counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	barWidth := plotSize / len(result.Counts)
	if barWidth < 1 {
		barWidth = 1
	}
	width := barWidth*len(result.Counts) + 2*margin
	height := plotSize + 2*margin + legend

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(title)
	canvas.Desc(fmt.Sprintf("mean %.4f, stdev %.4f", result.Mean, result.StdDev))
	canvas.Rect(margin, margin, barWidth*len(result.Counts), plotSize, "fill:white; stroke:gray")

	canvas.Gstyle("fill:steelblue; stroke:white")
	for i, c := range result.Counts {
		h := c * plotSize / maxCount
		canvas.Rect(margin+i*barWidth, margin+plotSize-h, barWidth, h)
	}
	canvas.Gend()

	fair := len(result.Rolls) * plotSize / (len(result.Counts) * maxCount)
	if fair <= plotSize {
		y := margin + plotSize - fair
		canvas.Line(margin, y, margin+barWidth*len(result.Counts), y, "stroke:red; stroke-dasharray:4")
	}

	canvas.Gstyle("text-anchor:middle; font-size:14; font-family:sans-serif")
	canvas.Text(width/2, height-legend/2, fmt.Sprintf("%s, mean=%.3f", title, result.Mean))
	canvas.Gend()
	canvas.End()
	return nil
}
