package app

import (
	"errors"
	"io/fs"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"muse/internal/config"
	"muse/internal/logger"
	"muse/internal/menubar"
	"muse/internal/preferences"
	"muse/internal/support"
)

const (
	AppName    = "Muse"
	AppVersion = "1.0.0"
)

const component = "Application"

type Application struct {
	fyneApp     fyne.App
	window      fyne.Window
	windowShown bool

	settings    *config.Settings
	logger      logger.Logger
	provisioner *support.Provisioner
	prefs       *preferences.Store
	menu        *menubar.Menu
	lifecycle   *Lifecycle

	client *config.Application
	token  *config.Token
}

// NewApplication wires the application around fyneApp. bundle supplies the
// support files copied on first run.
func NewApplication(fyneApp fyne.App, settings *config.Settings, bundle fs.FS, log logger.Logger) (*Application, error) {
	if fyneApp == nil {
		return nil, errors.New("nil fyne app")
	}
	if settings == nil {
		defaults := config.DefaultSettings()
		settings = &defaults
	}
	if log == nil {
		log = logger.Nop()
	}

	root := support.DefaultRoot
	if settings.SupportRoot != "" {
		root = support.StaticRoot(settings.SupportRoot)
	}

	a := &Application{
		fyneApp:  fyneApp,
		settings: settings,
		logger:   log,
		provisioner: support.NewProvisioner(settings.BundleID, bundle,
			support.WithRoot(root),
			support.WithLogger(log),
		),
		prefs: preferences.NewStore(fyneApp.Preferences()),
	}

	a.window = fyneApp.NewWindow(AppName)
	a.window.SetContent(container.NewCenter(widget.NewLabel(AppName)))
	a.window.Resize(fyne.NewSize(320, 320))
	a.window.SetCloseIntercept(a.hideWindow)

	a.menu = menubar.New(AppName, a, menubar.Actions{
		ToggleWindow: a.ToggleWindow,
		Quit:         a.Quit,
	}, log)

	a.lifecycle = NewLifecycle(log)

	log.Info(component, "application initialized", map[string]interface{}{
		"version":   AppVersion,
		"bundle_id": settings.BundleID,
	})
	return a, nil
}

// Launch runs the startup sequence. It is safe to call more than once; only
// the first call has any effect.
func (a *Application) Launch() {
	a.lifecycle.Launch([]Step{
		{"attach menu", a.attachMenu},
		{"provision support directory", a.provisionSupport},
		{"register default preferences", a.prefs.RegisterDefaults},
		{"prepare menu items", a.prepareMenu},
		{"load support files", a.loadSupportFiles},
	})
}

// Run launches the application, shows the window and blocks in the event
// loop until the application quits.
func (a *Application) Run() error {
	a.Launch()

	a.showWindow()
	a.logger.Info(component, "event loop starting", nil)
	a.fyneApp.Run()
	return nil
}

// Toggle flips a preference on behalf of the menu.
func (a *Application) Toggle(key preferences.Key) bool {
	value := a.prefs.Toggle(key)
	a.logger.Info(component, "preference changed", map[string]interface{}{
		"key":   string(key),
		"value": value,
	})
	return value
}

// ToggleWindow shows the window when hidden and hides it when shown.
func (a *Application) ToggleWindow() {
	if a.windowShown {
		a.hideWindow()
		return
	}
	a.showWindow()
}

func (a *Application) Quit() {
	a.logger.Info(component, "quit requested", nil)
	a.lifecycle.Terminate()
	a.fyneApp.Quit()
}

// Shutdown quits from outside the event loop, e.g. on a signal. It does
// nothing once the application has already quit.
func (a *Application) Shutdown() {
	if a.lifecycle.Terminated() {
		return
	}
	fyne.Do(a.Quit)
}

func (a *Application) WindowShown() bool {
	return a.windowShown
}

func (a *Application) Menu() *menubar.Menu {
	return a.menu
}

func (a *Application) Preferences() *preferences.Store {
	return a.prefs
}

func (a *Application) Provisioner() *support.Provisioner {
	return a.provisioner
}

// ClientSettings returns the loaded application.json, or nil.
func (a *Application) ClientSettings() *config.Application {
	return a.client
}

// Token returns the loaded token.json, or nil.
func (a *Application) Token() *config.Token {
	return a.token
}

func (a *Application) showWindow() {
	a.window.Show()
	a.windowShown = true
}

func (a *Application) hideWindow() {
	a.window.Hide()
	a.windowShown = false
}

func (a *Application) attachMenu() {
	a.menu.Attach(a.fyneApp, theme.MediaPlayIcon())
}

func (a *Application) provisionSupport() {
	a.provisioner.Provision()
}

func (a *Application) prepareMenu() {
	a.menu.Prepare(a.prefs)
}

func (a *Application) loadSupportFiles() {
	dir, err := a.provisioner.Dir()
	if err != nil {
		a.logger.Warning(component, "support directory unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	client, err := config.LoadApplication(dir)
	if err != nil {
		a.logger.Warning(component, "application settings not loaded", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		a.client = client
		if !client.Configured() {
			a.logger.Info(component, "client credentials not set", map[string]interface{}{
				"file": config.ApplicationFile,
			})
		}
	}

	token, err := config.NewTokenStore(dir).Load()
	if err != nil {
		a.logger.Warning(component, "token not loaded", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	a.token = token
	a.logger.Debug(component, "token loaded", map[string]interface{}{
		"valid": token.Valid(time.Now()),
	})
}
