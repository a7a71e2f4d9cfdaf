// QuickCalc: four-function desktop calculator
//
// A small cross-platform Fyne application: two operand fields, four
// operations, a result line and a light/dark theme toggle.
//
// Build:
//   go build -o quickcalc ./cmd/quickcalc
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o quickcalc.exe ./cmd/quickcalc
//   GOOS=darwin  GOARCH=amd64 go build -o quickcalc-darwin ./cmd/quickcalc
//
// Configuration is read from ~/.quickcalc/config.json and QUICKCALC_*
// environment variables. The program takes no flags.

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/QuickCalc/internal/logger"
	"github.com/piwi3910/QuickCalc/internal/model"
	"github.com/piwi3910/QuickCalc/internal/project"
	"github.com/piwi3910/QuickCalc/internal/ui"
)

func main() {
	configPath := project.DefaultConfigPath()
	config, err := project.LoadAppConfig(configPath)
	log := logger.NewConsoleLogger(logger.ParseLevel(config.LogLevel))
	if err != nil {
		log.Error("main", err, map[string]interface{}{"path": configPath})
		config = model.DefaultAppConfig()
	}
	log.Info("main", "starting", map[string]interface{}{"theme": config.Theme})

	application := app.NewWithID("com.piwi3910.quickcalc")
	window := application.NewWindow("QuickCalc")

	appUI := ui.NewApp(application, window, config, configPath, log)
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	appUI.FocusFirstField()

	window.SetCloseIntercept(func() {
		_ = appUI.PersistConfig()
		window.Close()
	})

	window.ShowAndRun()
	log.Info("main", "exiting", nil)
}
