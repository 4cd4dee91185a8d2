package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"fm-calculator/sieve"
)

var resultHeaders = []string{
	"Sieve", "Weight (g)", "Cumulative %", "% Passing", "ASTM Limit",
}

// ResultsPanel shows the computed table and the summary figures.
type ResultsPanel struct {
	container *fyne.Container
	grid      *fyne.Container

	fmLabel         *widget.RichText
	classLabel      *widget.Label
	totalLabel      *widget.Label
	complianceLabel *widget.Label
}

func NewResultsPanel() *ResultsPanel {
	panel := &ResultsPanel{}
	panel.setupPanel()
	return panel
}

func (rp *ResultsPanel) setupPanel() {
	rp.grid = container.NewGridWithColumns(len(resultHeaders))
	rp.fmLabel = widget.NewRichTextFromMarkdown("## Fineness Modulus: --")
	rp.classLabel = widget.NewLabel("Sand Type: --")
	rp.totalLabel = widget.NewLabel("Total Weight: --")
	rp.complianceLabel = widget.NewLabel("ASTM C33 Gradation: --")

	summary := container.NewVBox(
		rp.fmLabel,
		container.NewHBox(rp.classLabel, widget.NewSeparator(), rp.totalLabel, widget.NewSeparator(), rp.complianceLabel),
	)

	rp.container = container.NewVBox(
		summary,
		widget.NewSeparator(),
		rp.grid,
	)
	rp.fillHeader()
}

func (rp *ResultsPanel) fillHeader() {
	for _, h := range resultHeaders {
		label := widget.NewLabel(h)
		label.TextStyle = fyne.TextStyle{Bold: true}
		rp.grid.Add(label)
	}
}

func (rp *ResultsPanel) GetContainer() *fyne.Container {
	return rp.container
}

// ShowResult rebuilds the table and summary from a fresh analysis.
func (rp *ResultsPanel) ShowResult(res *sieve.Result) {
	fyne.Do(func() {
		rp.grid.Objects = nil
		rp.fillHeader()
		for _, row := range res.Rows {
			rp.grid.Add(widget.NewLabel(sieve.SizeLabel(row.Size)))
			rp.grid.Add(widget.NewLabel(fmt.Sprintf("%.2f", row.Retained)))
			rp.grid.Add(widget.NewLabel(fmt.Sprintf("%.2f", row.CumulativePercent)))
			rp.grid.Add(widget.NewLabel(fmt.Sprintf("%.2f", row.PercentPassing)))
			rp.grid.Add(widget.NewLabel(row.Limit.String()))
		}
		rp.grid.Refresh()

		rp.fmLabel.ParseMarkdown(fmt.Sprintf("## Fineness Modulus: %.2f", res.Summary.FinenessModulus))
		rp.classLabel.SetText("Sand Type: " + res.Summary.Classification)
		rp.totalLabel.SetText(fmt.Sprintf("Total Weight: %.2f g", res.Summary.TotalWeight))
		if res.Compliant() {
			rp.complianceLabel.SetText("ASTM C33 Gradation: Pass")
		} else {
			rp.complianceLabel.SetText("ASTM C33 Gradation: Fail")
		}
	})
}

// Clear returns the panel to its pre-calculation state.
func (rp *ResultsPanel) Clear() {
	fyne.Do(func() {
		rp.grid.Objects = nil
		rp.fillHeader()
		rp.grid.Refresh()
		rp.fmLabel.ParseMarkdown("## Fineness Modulus: --")
		rp.classLabel.SetText("Sand Type: --")
		rp.totalLabel.SetText("Total Weight: --")
		rp.complianceLabel.SetText("ASTM C33 Gradation: --")
	})
}
