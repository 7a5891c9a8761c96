// Package chart renders analysis results as SVG using gonum/plot.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/aria-lang/seqanalyser-go/internal/sequence"
)

// Default canvas size of the composition chart.
const (
	DefaultWidth  = 700
	DefaultHeight = 400
)

// CompositionTitle is the title drawn above the composition chart.
const CompositionTitle = "A T G C content"

var barColor = color.RGBA{R: 50, G: 100, B: 200, A: 255}

// CompositionPlot builds a four-bar chart of comp in A, T, G, C order.
func CompositionPlot(comp sequence.Composition) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = CompositionTitle
	p.X.Label.Text = "Nucleotide"
	p.Y.Label.Text = "Frequency"
	p.Y.Min = 0
	p.Y.Max = 1

	bars, err := plotter.NewBarChart(plotter.Values(comp.Values()), vg.Points(40))
	if err != nil {
		return nil, fmt.Errorf("building bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = barColor
	p.Add(bars)

	names := make([]string, len(sequence.Bases))
	for i, b := range sequence.Bases {
		names[i] = string(b)
	}
	p.NominalX(names...)

	return p, nil
}

// WriteCompositionSVG renders the composition chart to w.
func WriteCompositionSVG(w io.Writer, comp sequence.Composition, width, height int) error {
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}

	p, err := CompositionPlot(comp)
	if err != nil {
		return err
	}

	writer, err := p.WriterTo(vg.Points(float64(width)), vg.Points(float64(height)), "svg")
	if err != nil {
		return fmt.Errorf("creating svg writer: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

// CompositionSVG renders the composition chart at the default size.
func CompositionSVG(comp sequence.Composition) (string, error) {
	var buf bytes.Buffer
	if err := WriteCompositionSVG(&buf, comp, DefaultWidth, DefaultHeight); err != nil {
		return "", err
	}
	return buf.String(), nil
}
