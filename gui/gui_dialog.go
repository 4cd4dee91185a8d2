package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"fm-calculator/report"
)

// ShowSampleInfoDialog collects the report metadata before an export. The
// defaults come from the config file so repeat operators only fill in what
// changed. onSubmit runs only when the dialog is confirmed.
func ShowSampleInfoDialog(window fyne.Window, defaults report.SampleInfo, onSubmit func(report.SampleInfo)) {
	lot := widget.NewEntry()
	lot.SetText(defaults.LotNumber)
	site := widget.NewEntry()
	site.SetText(defaults.SiteName)
	sample := widget.NewEntry()
	sample.SetText(defaults.SampleName)
	supplier := widget.NewEntry()
	supplier.SetText(defaults.SupplierName)
	totalWeight := widget.NewEntry()
	totalWeight.SetText(defaults.TotalWeight)
	samplingDate := widget.NewEntry()
	samplingDate.SetText(defaults.SamplingDate)
	testingDate := widget.NewEntry()
	testingDate.SetPlaceHolder("defaults to now")

	items := []*widget.FormItem{
		widget.NewFormItem("Lot/Truck No", lot),
		widget.NewFormItem("Site Name", site),
		widget.NewFormItem("Sample ID", sample),
		widget.NewFormItem("Supplier", supplier),
		widget.NewFormItem("Total Weight (g)", totalWeight),
		widget.NewFormItem("Sampling Date", samplingDate),
		widget.NewFormItem("Testing Date", testingDate),
	}

	dialog.ShowForm("Export Details", "OK", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		onSubmit(report.SampleInfo{
			LotNumber:    lot.Text,
			SiteName:     site.Text,
			SampleName:   sample.Text,
			SupplierName: supplier.Text,
			TotalWeight:  totalWeight.Text,
			SamplingDate: samplingDate.Text,
			TestingDate:  testingDate.Text,
		})
	}, window)
}
