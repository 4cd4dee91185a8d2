package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	chartViewWidth  = 480
	chartViewHeight = 320
)

// ChartView displays the rendered gradation curve.
type ChartView struct {
	container *fyne.Container
	image     *canvas.Image
}

func NewChartView() *ChartView {
	view := &ChartView{}
	view.setupView()
	return view
}

func (cv *ChartView) setupView() {
	cv.image = canvas.NewImageFromImage(nil)
	cv.image.FillMode = canvas.ImageFillContain
	cv.image.SetMinSize(fyne.NewSize(chartViewWidth, chartViewHeight))

	cv.container = container.NewVBox(
		widget.NewRichTextFromMarkdown("**Gradation Curve**"),
		cv.image,
	)
}

func (cv *ChartView) GetContainer() *fyne.Container {
	return cv.container
}

// SetChart swaps in a freshly rendered PNG.
func (cv *ChartView) SetChart(png []byte) {
	fyne.Do(func() {
		cv.image.Resource = fyne.NewStaticResource("gradation-curve.png", png)
		cv.image.Refresh()
	})
}

// Clear blanks the chart.
func (cv *ChartView) Clear() {
	fyne.Do(func() {
		cv.image.Resource = nil
		cv.image.Refresh()
	})
}
