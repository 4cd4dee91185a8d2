package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"fm-calculator/sieve"
)

// LayoutManager coordinates the main application layout
type LayoutManager struct {
	mainContainer *fyne.Container
	weightForm    *WeightForm
	resultsPanel  *ResultsPanel
	chartView     *ChartView
	statusBar     *StatusBar
}

func NewLayoutManager(onCalculate, onExportPDF, onExportXLSX, onReset func()) *LayoutManager {
	weightForm := NewWeightForm(onCalculate, onExportPDF, onExportXLSX, onReset)
	resultsPanel := NewResultsPanel()
	chartView := NewChartView()
	statusBar := NewStatusBar()

	// Results on the left of the split, chart on the right; the weight form
	// sits along the window's left edge with the status bar at the bottom.
	split := container.NewHSplit(resultsPanel.GetContainer(), chartView.GetContainer())
	split.SetOffset(0.55)

	mainContainer := container.NewBorder(
		nil,
		statusBar.GetContainer(),
		container.NewPadded(weightForm.GetContainer()),
		nil,
		split,
	)

	return &LayoutManager{
		mainContainer: mainContainer,
		weightForm:    weightForm,
		resultsPanel:  resultsPanel,
		chartView:     chartView,
		statusBar:     statusBar,
	}
}

func (lm *LayoutManager) GetMainContainer() *fyne.Container {
	return lm.mainContainer
}

// Form methods
func (lm *LayoutManager) Readings() ([]sieve.Reading, error) {
	return lm.weightForm.Readings()
}

func (lm *LayoutManager) SetExportEnabled(enabled bool) {
	lm.weightForm.SetExportEnabled(enabled)
}

// Result methods
func (lm *LayoutManager) ShowResult(res *sieve.Result, chartPNG []byte) {
	lm.resultsPanel.ShowResult(res)
	lm.chartView.SetChart(chartPNG)
	lm.statusBar.SetFinenessModulus(res.Summary.FinenessModulus, res.Summary.Classification)
}

func (lm *LayoutManager) ClearResults() {
	lm.weightForm.Reset()
	lm.resultsPanel.Clear()
	lm.chartView.Clear()
	lm.statusBar.ClearFinenessModulus()
}

// Status methods
func (lm *LayoutManager) UpdateStatus(status string) {
	lm.statusBar.SetStatus(status)
}
