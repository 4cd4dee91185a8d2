package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

func (app *FMApp) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export PDF Report...", func() {
			app.handleExportPDF()
		}),
		fyne.NewMenuItem("Export Spreadsheet...", func() {
			app.handleExportXLSX()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset", func() {
			app.handleReset()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			app.fyneApp.Quit()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Classification Bands", func() {
			dialog.ShowInformation("Sand Classification",
				"Fineness modulus bands:\n\n"+
					"  FM < 2.2        Fine Sand\n"+
					"  2.2 ≤ FM < 2.8  Medium Sand\n"+
					"  FM ≥ 2.8        Coarse Sand\n\n"+
					"Samples outside FM 1.0–4.0 are not classified as sand.",
				app.window)
		}),
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About",
				fmt.Sprintf("%s %s\n\nSieve analysis, gradation curve and test-report export for fine aggregate.", AppName, AppVersion),
				app.window)
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, helpMenu)
	app.window.SetMainMenu(mainMenu)
}
