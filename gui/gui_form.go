package gui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"fm-calculator/sieve"
)

// WeightForm is the left-hand entry panel: one weight entry per standard
// sieve plus the calculate/export/reset actions.
type WeightForm struct {
	container *fyne.Container
	entries   []*widget.Entry

	calculateButton  *widget.Button
	exportPDFButton  *widget.Button
	exportXLSXButton *widget.Button
	resetButton      *widget.Button
}

func NewWeightForm(onCalculate, onExportPDF, onExportXLSX, onReset func()) *WeightForm {
	form := &WeightForm{}
	form.setupForm(onCalculate, onExportPDF, onExportXLSX, onReset)
	return form
}

func (wf *WeightForm) setupForm(onCalculate, onExportPDF, onExportXLSX, onReset func()) {
	grid := container.NewGridWithColumns(2)
	wf.entries = make([]*widget.Entry, len(sieve.StandardSizes))
	for i, size := range sieve.StandardSizes {
		entry := widget.NewEntry()
		entry.SetPlaceHolder("0.0")
		wf.entries[i] = entry
		grid.Add(widget.NewLabel(sieve.SizeLabel(size)))
		grid.Add(entry)
	}

	wf.calculateButton = widget.NewButton("Calculate FM", onCalculate)
	wf.calculateButton.Importance = widget.HighImportance

	wf.exportPDFButton = widget.NewButton("Export PDF Report...", onExportPDF)
	wf.exportPDFButton.Disable()
	wf.exportXLSXButton = widget.NewButton("Export Spreadsheet...", onExportXLSX)
	wf.exportXLSXButton.Disable()

	wf.resetButton = widget.NewButton("Reset", onReset)

	wf.container = container.NewVBox(
		widget.NewRichTextFromMarkdown("**Weight Retained (g)**"),
		grid,
		widget.NewSeparator(),
		wf.calculateButton,
		wf.exportPDFButton,
		wf.exportXLSXButton,
		wf.resetButton,
	)
}

func (wf *WeightForm) GetContainer() *fyne.Container {
	return wf.container
}

// Readings parses the entry fields into the standard sieve series. Blank
// fields count as zero; anything non-numeric is an error.
func (wf *WeightForm) Readings() ([]sieve.Reading, error) {
	readings := sieve.StandardReadings()
	for i, entry := range wf.entries {
		text := strings.TrimSpace(entry.Text)
		if text == "" {
			continue
		}
		weight, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("weight for %s is not a number: %q",
				sieve.SizeLabel(readings[i].Size), text)
		}
		readings[i].Retained = weight
	}
	return readings, nil
}

// SetExportEnabled toggles the export actions; they stay disabled until a
// calculation has produced something to export.
func (wf *WeightForm) SetExportEnabled(enabled bool) {
	fyne.Do(func() {
		if enabled {
			wf.exportPDFButton.Enable()
			wf.exportXLSXButton.Enable()
		} else {
			wf.exportPDFButton.Disable()
			wf.exportXLSXButton.Disable()
		}
	})
}

// Reset clears every weight entry.
func (wf *WeightForm) Reset() {
	fyne.Do(func() {
		for _, entry := range wf.entries {
			entry.SetText("")
		}
	})
}
