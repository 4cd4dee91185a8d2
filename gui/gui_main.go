package gui

import (
	"fyne.io/fyne/v2"

	"fm-calculator/sieve"
)

type MainInterface struct {
	window        fyne.Window
	layoutManager *LayoutManager

	// Callbacks
	onCalculate  func()
	onExportPDF  func()
	onExportXLSX func()
	onReset      func()
}

func NewMainInterface(window fyne.Window,
	onCalculate, onExportPDF, onExportXLSX, onReset func()) *MainInterface {

	gui := &MainInterface{
		window:       window,
		onCalculate:  onCalculate,
		onExportPDF:  onExportPDF,
		onExportXLSX: onExportXLSX,
		onReset:      onReset,
	}

	gui.layoutManager = NewLayoutManager(
		onCalculate,
		onExportPDF,
		onExportXLSX,
		onReset,
	)

	return gui
}

func (gui *MainInterface) GetMainContainer() *fyne.Container {
	return gui.layoutManager.GetMainContainer()
}

// Readings collects the weights currently typed into the form.
func (gui *MainInterface) Readings() ([]sieve.Reading, error) {
	return gui.layoutManager.Readings()
}

func (gui *MainInterface) ShowResult(res *sieve.Result, chartPNG []byte) {
	gui.layoutManager.ShowResult(res, chartPNG)
}

func (gui *MainInterface) ClearResults() {
	gui.layoutManager.ClearResults()
}

func (gui *MainInterface) SetExportEnabled(enabled bool) {
	gui.layoutManager.SetExportEnabled(enabled)
}

func (gui *MainInterface) UpdateStatus(status string) {
	gui.layoutManager.UpdateStatus(status)
}
