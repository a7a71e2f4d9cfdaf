package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/QuickCalc/internal/engine"
	"github.com/piwi3910/QuickCalc/internal/logger"
	"github.com/piwi3910/QuickCalc/internal/model"
	"github.com/piwi3910/QuickCalc/internal/project"
)

const (
	resultPrefix      = "Result: "
	resultPlaceholder = resultPrefix + "-"

	logComponent = "ui"
)

// App holds all application state and UI references. The operand entries,
// the result binding and the theme variant are only mutated by App's handlers.
type App struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     model.AppConfig
	configPath string
	log        logger.Logger

	entryA  *widget.Entry
	entryB  *widget.Entry
	result  binding.String
	variant model.ThemeVariant

	themeChanged bool // set once the user toggles the theme

	theme       *CalcTheme
	fields      *container.ThemeOverride
	themeToggle *widget.Check
	opButtons   map[model.Operation]*ttwidget.Button
	clearButton *widget.Button

	// showError presents a blocking error notification.
	showError func(err error)
}

// NewApp creates the calculator shell. configPath is where the theme choice
// is written back by PersistConfig; an empty path disables saving.
func NewApp(application fyne.App, window fyne.Window, config model.AppConfig, configPath string, log logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	a := &App{
		fyneApp:    application,
		window:     window,
		config:     config,
		configPath: configPath,
		log:        log,
		result:     binding.NewString(),
		variant:    config.ThemeVariant(),
		opButtons:  make(map[model.Operation]*ttwidget.Button),
	}
	a.showError = func(err error) {
		dialog.ShowError(err, a.window)
	}
	_ = a.result.Set(resultPlaceholder)
	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Clear", a.clear),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Toggle Theme", a.toggleTheme),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About QuickCalc",
		"QuickCalc, a four-function calculator\n\n"+
			"Enter two numbers and pick an operation.\n"+
			"Press Enter in either field to add.",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.entryA = widget.NewEntry()
	a.entryA.SetPlaceHolder("e.g. 12")
	a.entryB = widget.NewEntry()
	a.entryB.SetPlaceHolder("e.g. 3.5")

	// Enter always adds, whichever field has focus.
	a.entryA.OnSubmitted = func(string) { a.compute(model.OpAdd) }
	a.entryB.OnSubmitted = func(string) { a.compute(model.OpAdd) }

	a.fields = container.NewThemeOverride(
		container.New(layout.NewFormLayout(),
			widget.NewLabel("A:"), a.entryA,
			widget.NewLabel("B:"), a.entryB,
		),
		newFieldTheme(NewCalcTheme(a.variant)),
	)

	buttons := container.NewGridWithColumns(len(model.Operations()))
	for _, op := range model.Operations() {
		btn := newOperationButton(op, func() { a.compute(op) })
		a.opButtons[op] = btn
		buttons.Add(btn)
	}

	a.clearButton = widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), a.clear)
	a.clearButton.Importance = widget.HighImportance

	resultLabel := widget.NewLabelWithData(a.result)
	resultLabel.TextStyle = fyne.TextStyle{Bold: true}
	resultLabel.SizeName = theme.SizeNameSubHeadingText

	a.themeToggle = widget.NewCheck(a.variant.Label(), func(checked bool) {
		a.setVariant(variantForChecked(checked))
	})
	a.themeToggle.Checked = a.variant == model.ThemeDark

	a.applyTheme()

	return container.NewPadded(container.NewVBox(
		container.NewHBox(layout.NewSpacer(), a.themeToggle),
		a.fields,
		buttons,
		a.clearButton,
		widget.NewSeparator(),
		resultLabel,
	))
}

// FocusFirstField puts the cursor in operand A.
func (a *App) FocusFirstField() {
	if a.entryA != nil {
		a.window.Canvas().Focus(a.entryA)
	}
}

// compute runs op on the current operand text. Failures leave operands and
// result untouched and raise a notification.
func (a *App) compute(op model.Operation) {
	r, err := engine.Evaluate(op, a.entryA.Text, a.entryB.Text)
	if err != nil {
		a.log.Warning(logComponent, "computation rejected", map[string]interface{}{
			"op":    op.String(),
			"kind":  model.KindOf(err).String(),
			"error": err.Error(),
		})
		a.showError(err)
		return
	}

	text := r.String()
	if err := a.result.Set(resultPrefix + text); err != nil {
		a.log.Error(logComponent, err, map[string]interface{}{"op": op.String()})
		return
	}
	a.log.Debug(logComponent, "computed", map[string]interface{}{
		"op":     op.String(),
		"result": text,
	})
}

// clear empties both operands and resets the result. The theme is untouched.
func (a *App) clear() {
	a.entryA.SetText("")
	a.entryB.SetText("")
	_ = a.result.Set(resultPlaceholder)
	a.FocusFirstField()
	a.log.Debug(logComponent, "cleared", nil)
}

func variantForChecked(checked bool) model.ThemeVariant {
	if checked {
		return model.ThemeDark
	}
	return model.ThemeLight
}

func (a *App) toggleTheme() {
	a.setVariant(a.variant.Toggle())
}

func (a *App) setVariant(v model.ThemeVariant) {
	if v == a.variant {
		return
	}
	a.variant = v
	a.config.Theme = v.String()
	a.themeChanged = true
	a.applyTheme()
	a.log.Info(logComponent, "theme changed", map[string]interface{}{"theme": v.String()})
}

// applyTheme rebuilds every theme from the active palette and replaces the
// old ones wholesale.
func (a *App) applyTheme() {
	a.theme = NewCalcTheme(a.variant)
	a.fyneApp.Settings().SetTheme(a.theme)

	if a.fields != nil {
		a.fields.Theme = newFieldTheme(a.theme)
		a.fields.Refresh()
	}
	if a.themeToggle != nil {
		dark := a.variant == model.ThemeDark
		if a.themeToggle.Checked != dark {
			a.themeToggle.SetChecked(dark)
		}
		a.themeToggle.Text = a.variant.Label()
		a.themeToggle.Refresh()
	}
}

// Config returns the current preferences, including the active theme.
func (a *App) Config() model.AppConfig {
	return a.config
}

// PersistConfig writes a theme the user toggled back to the config file.
// Other settings, and values that only came from the environment, stay as
// they are on disk.
func (a *App) PersistConfig() error {
	if a.configPath == "" || !a.themeChanged {
		return nil
	}
	if err := project.SaveTheme(a.configPath, a.variant.String()); err != nil {
		a.log.Error(logComponent, err, map[string]interface{}{"path": a.configPath})
		return err
	}
	return nil
}
