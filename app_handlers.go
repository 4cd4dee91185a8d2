package main

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"fm-calculator/gui"
	"fm-calculator/report"
	"fm-calculator/sieve"
)

func (app *FMApp) handleCalculate() {
	readings, err := app.mainGUI.Readings()
	if err != nil {
		app.showError("Input Error", err)
		return
	}

	app.mainGUI.UpdateStatus("Calculating...")

	go func() {
		res, err := sieve.Analyze(readings)
		if err != nil {
			app.log.Error("engine", err, nil)
			app.showError("Input Error", err)
			app.mainGUI.UpdateStatus("Ready")
			return
		}

		chart, err := report.RenderChart(res)
		if err != nil {
			app.log.Error("chart", err, nil)
			app.showError("Chart Error", err)
			app.mainGUI.UpdateStatus("Ready")
			return
		}

		app.setResult(res)
		app.mainGUI.ShowResult(res, chart)
		app.mainGUI.SetExportEnabled(true)
		app.mainGUI.UpdateStatus(fmt.Sprintf("Fineness modulus %.2f (%s)",
			res.Summary.FinenessModulus, res.Summary.Classification))

		app.log.Info("engine", "analysis complete", map[string]interface{}{
			"total_g":        res.Summary.TotalWeight,
			"fm":             res.Summary.FinenessModulus,
			"classification": res.Summary.Classification,
			"astm_compliant": res.Compliant(),
		})
	}()
}

func (app *FMApp) handleExportPDF() {
	app.export("PDF report", "sieve-analysis-report.pdf", []string{".pdf"}, report.WritePDF)
}

func (app *FMApp) handleExportXLSX() {
	app.export("spreadsheet", "sieve-analysis.xlsx", []string{".xlsx"}, report.WriteXLSX)
}

type exportFunc func(w io.Writer, res *sieve.Result, info report.SampleInfo) error

func (app *FMApp) export(kind, filename string, extensions []string, write exportFunc) {
	res := app.result()
	if res == nil {
		app.showError("Export Error", fmt.Errorf("no analysis to export"))
		return
	}

	defaults := report.SampleInfo{
		SiteName:     app.config.Report.SiteName,
		SupplierName: app.config.Report.Supplier,
		TotalWeight:  fmt.Sprintf("%.2f", res.Summary.TotalWeight),
	}

	gui.ShowSampleInfoDialog(app.window, defaults, func(info report.SampleInfo) {
		saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				app.showError("File Save Error", err)
				return
			}
			if writer == nil {
				return
			}

			app.mainGUI.UpdateStatus("Exporting " + kind + "...")

			go func() {
				defer writer.Close()
				if err := write(writer, res, info); err != nil {
					app.showError("Export Error", err)
					app.mainGUI.UpdateStatus("Ready")
					return
				}
				app.log.Info("export", kind+" written", map[string]interface{}{
					"uri": writer.URI().String(),
				})
				app.mainGUI.UpdateStatus("Exported " + kind + " successfully")
			}()
		}, app.window)
		saveDialog.SetFileName(filename)
		saveDialog.SetFilter(storage.NewExtensionFileFilter(extensions))
		saveDialog.Show()
	})
}

func (app *FMApp) handleReset() {
	app.setResult(nil)
	app.mainGUI.ClearResults()
	app.mainGUI.SetExportEnabled(false)
	app.mainGUI.UpdateStatus("Ready")
}

func (app *FMApp) showError(title string, err error) {
	app.log.Error("ui", err, map[string]interface{}{"title": title})

	// Dialogs must be shown on the main thread for fyne v2.6+
	fyne.Do(func() {
		dialog.ShowError(err, app.window)
	})
}
