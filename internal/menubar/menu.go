// Package menubar builds the status item menu and keeps its checkbox items
// in sync with the preferences they control.
package menubar

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"muse/internal/logger"
	"muse/internal/preferences"
)

const component = "MenuBar"

// Toggler flips a preference and returns its new value.
type Toggler interface {
	Toggle(key preferences.Key) bool
}

// Reader returns the current value of a preference.
type Reader interface {
	Bool(key preferences.Key) bool
}

// Actions are the non-preference menu commands.
type Actions struct {
	ToggleWindow func()
	Quit         func()
}

type checkItem struct {
	key   preferences.Key
	label string
}

var checkItems = []checkItem{
	{preferences.ControlStripItem, "Show Control Strip Item"},
	{preferences.ControlStripHUD, "Show HUD for Control Strip Actions"},
	{preferences.MenuBarTitle, "Show Song Title in Menu Bar"},
}

type Menu struct {
	menu    *fyne.Menu
	checks  map[preferences.Key]*fyne.MenuItem
	toggler Toggler
	actions Actions
	logger  logger.Logger
	refresh func()
}

// New builds the menu. A nil toggler leaves every checkbox item off.
func New(title string, toggler Toggler, actions Actions, log logger.Logger) *Menu {
	if log == nil {
		log = logger.Nop()
	}
	m := &Menu{
		checks:  make(map[preferences.Key]*fyne.MenuItem, len(checkItems)),
		toggler: toggler,
		actions: actions,
		logger:  log,
	}

	items := []*fyne.MenuItem{
		fyne.NewMenuItem("Toggle Window", m.toggleWindow),
		fyne.NewMenuItemSeparator(),
	}
	for _, ci := range checkItems {
		key := ci.key
		item := fyne.NewMenuItem(ci.label, nil)
		item.Action = func() { m.toggle(key) }
		m.checks[key] = item
		items = append(items, item)
	}
	quit := fyne.NewMenuItem("Quit", m.quit)
	quit.IsQuit = true
	items = append(items, fyne.NewMenuItemSeparator(), quit)

	m.menu = fyne.NewMenu(title, items...)
	m.refresh = m.menu.Refresh
	return m
}

// Menu returns the underlying toolkit menu.
func (m *Menu) Menu() *fyne.Menu {
	return m.menu
}

// Item returns the checkbox item bound to key.
func (m *Menu) Item(key preferences.Key) *fyne.MenuItem {
	return m.checks[key]
}

// Attach installs the menu as the system tray (status bar) menu. It reports
// false when the app does not run on a desktop driver.
func (m *Menu) Attach(a fyne.App, icon fyne.Resource) bool {
	desk, ok := a.(desktop.App)
	if !ok {
		m.logger.Warning(component, "system tray unavailable", nil)
		return false
	}
	desk.SetSystemTrayMenu(m.menu)
	if icon != nil {
		desk.SetSystemTrayIcon(icon)
	}
	return true
}

// Prepare sets every checkbox item from the stored preferences.
func (m *Menu) Prepare(prefs Reader) {
	for key, item := range m.checks {
		item.Checked = prefs.Bool(key)
	}
	m.refresh()
}

func (m *Menu) toggle(key preferences.Key) {
	value := false
	if m.toggler != nil {
		value = m.toggler.Toggle(key)
	}
	m.checks[key].Checked = value
	m.refresh()

	m.logger.Debug(component, "preference toggled", map[string]interface{}{
		"key":   string(key),
		"value": value,
	})
}

func (m *Menu) toggleWindow() {
	if m.actions.ToggleWindow != nil {
		m.actions.ToggleWindow()
	}
}

func (m *Menu) quit() {
	if m.actions.Quit != nil {
		m.actions.Quit()
	}
}
