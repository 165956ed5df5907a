// Package preferences defines the user preferences surfaced in the menu bar
// and persists them through the toolkit preference store.
package preferences

import "fyne.io/fyne/v2"

type Key string

const (
	// ControlStripItem shows the playback button in the Touch Bar control strip.
	ControlStripItem Key = "controlStripItem"
	// ControlStripHUD shows a HUD when a control strip action fires.
	ControlStripHUD Key = "controlStripHUD"
	// MenuBarTitle shows the current song title next to the status item.
	MenuBarTitle Key = "menuBarTitle"
)

var defaults = map[Key]bool{
	ControlStripItem: true,
	ControlStripHUD:  true,
	MenuBarTitle:     true,
}

// Keys returns every known preference key in menu order.
func Keys() []Key {
	return []Key{ControlStripItem, ControlStripHUD, MenuBarTitle}
}

// Default returns the registered default for key.
func Default(key Key) bool {
	return defaults[key]
}

// Store reads and writes boolean preferences.
type Store struct {
	prefs fyne.Preferences
}

func NewStore(prefs fyne.Preferences) *Store {
	return &Store{prefs: prefs}
}

// RegisterDefaults stores the default for every key that has no value yet.
// Values already chosen by the user are kept.
func (s *Store) RegisterDefaults() {
	for _, key := range Keys() {
		if !s.Has(key) {
			s.prefs.SetBool(string(key), defaults[key])
		}
	}
}

// Has reports whether a value is stored for key.
func (s *Store) Has(key Key) bool {
	// An absent key returns whichever fallback is passed in.
	return s.prefs.BoolWithFallback(string(key), false) == s.prefs.BoolWithFallback(string(key), true)
}

func (s *Store) Bool(key Key) bool {
	return s.prefs.BoolWithFallback(string(key), defaults[key])
}

func (s *Store) SetBool(key Key, value bool) {
	s.prefs.SetBool(string(key), value)
}

// Toggle flips key and returns the new value.
func (s *Store) Toggle(key Key) bool {
	value := !s.Bool(key)
	s.SetBool(key, value)
	return value
}
