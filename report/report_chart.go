package report

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"fm-calculator/sieve"
)

// Chart dimensions, chosen to fit the PDF page and the side panel alike.
const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

var curveColor = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}

// RenderChart draws the gradation curve (percent passing vs. sieve size,
// coarsest sieve on the left) and returns it as PNG bytes. The pan has no
// opening size and is not plotted.
func RenderChart(res *sieve.Result) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Gradation Curve"
	p.X.Label.Text = "Sieve Size (mm)"
	p.Y.Label.Text = "% Passing"
	p.Y.Min, p.Y.Max = 0, 105
	p.X.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, len(res.Rows))
	labels := make([]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		if row.Size == sieve.PanSize {
			continue
		}
		pts = append(pts, plotter.XY{X: row.Size, Y: row.PercentPassing})
		labels = append(labels, fmt.Sprintf("%.1f%%", row.PercentPassing))
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("building gradation curve: %w", err)
	}
	line.Color = curveColor
	line.Width = vg.Points(2)
	points.Color = curveColor
	points.Radius = vg.Points(3)

	pointLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("labelling gradation curve: %w", err)
	}
	pointLabels.Offset = vg.Point{Y: vg.Points(6)}

	p.Add(line, points, pointLabels)

	writer, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("rendering gradation curve: %w", err)
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encoding gradation curve: %w", err)
	}
	return buf.Bytes(), nil
}
