package main

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"fm-calculator/gui"
	"fm-calculator/internal/config"
	"fm-calculator/internal/logger"
	"fm-calculator/sieve"
)

const (
	AppName    = "Sand Fineness Modulus Calculator"
	AppID      = "com.fmcalculator.app"
	AppVersion = "1.0.0"

	ConfigFile = "fm-calculator.yaml"
)

type FMApp struct {
	fyneApp fyne.App
	window  fyne.Window
	config  config.Config
	log     *logger.Logger
	mainGUI *gui.MainInterface

	// Last completed analysis, kept for the export handlers.
	mu         sync.Mutex
	lastResult *sieve.Result
}

func NewFMApp() *FMApp {
	cfg, cfgErr := config.Load(ConfigFile)
	log := logger.NewConsole(cfg.App.LogLevel)
	if cfgErr != nil {
		log.Warning("config", "config file unreadable, using defaults",
			map[string]interface{}{"path": ConfigFile, "error": cfgErr.Error()})
	}

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(windowSize(cfg)))

	fmApp := &FMApp{
		fyneApp: fyneApp,
		window:  window,
		config:  cfg,
		log:     log,
	}

	fmApp.mainGUI = gui.NewMainInterface(window,
		fmApp.handleCalculate, fmApp.handleExportPDF, fmApp.handleExportXLSX, fmApp.handleReset)

	return fmApp
}

func (app *FMApp) Run() {
	app.setupMenus()
	app.window.SetContent(app.mainGUI.GetMainContainer())
	app.log.Info("app", "starting", map[string]interface{}{"version": AppVersion})
	app.window.ShowAndRun()
}

func (app *FMApp) setResult(res *sieve.Result) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.lastResult = res
}

func (app *FMApp) result() *sieve.Result {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.lastResult
}

func windowSize(cfg config.Config) (float32, float32) {
	width, height := cfg.Window.Width, cfg.Window.Height
	if width <= 0 {
		width = 1100
	}
	if height <= 0 {
		height = 760
	}
	return width, height
}
