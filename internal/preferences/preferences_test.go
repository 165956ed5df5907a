package preferences

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	return NewStore(a.Preferences())
}

func TestRegisterDefaults(t *testing.T) {
	s := newTestStore(t)

	for _, key := range Keys() {
		if s.Has(key) {
			t.Fatalf("Has(%s) = true on a fresh store", key)
		}
	}

	s.RegisterDefaults()

	for _, key := range Keys() {
		if !s.Has(key) {
			t.Errorf("Has(%s) = false after RegisterDefaults", key)
		}
		if got := s.Bool(key); got != Default(key) {
			t.Errorf("Bool(%s) = %v, want default %v", key, got, Default(key))
		}
	}
}

func TestRegisterDefaultsKeepsStoredValues(t *testing.T) {
	s := newTestStore(t)
	s.SetBool(ControlStripHUD, false)

	s.RegisterDefaults()

	if s.Bool(ControlStripHUD) {
		t.Error("RegisterDefaults overwrote a stored value")
	}
	if !s.Bool(ControlStripItem) {
		t.Error("ControlStripItem default not registered")
	}
}

func TestToggle(t *testing.T) {
	s := newTestStore(t)
	s.RegisterDefaults()

	if got := s.Toggle(MenuBarTitle); got != !Default(MenuBarTitle) {
		t.Fatalf("Toggle(%s) = %v, want %v", MenuBarTitle, got, !Default(MenuBarTitle))
	}
	if got := s.Bool(MenuBarTitle); got != !Default(MenuBarTitle) {
		t.Errorf("Bool after Toggle = %v", got)
	}
	if got := s.Toggle(MenuBarTitle); got != Default(MenuBarTitle) {
		t.Errorf("second Toggle = %v, want %v", got, Default(MenuBarTitle))
	}
}

func TestBoolFallsBackToDefault(t *testing.T) {
	s := newTestStore(t)

	for _, key := range Keys() {
		if got := s.Bool(key); got != Default(key) {
			t.Errorf("Bool(%s) = %v before registration, want %v", key, got, Default(key))
		}
	}
}
