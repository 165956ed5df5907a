package config

import "testing"

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("MUSE_LOG_LEVEL", "")
	t.Setenv("MUSE_BUNDLE_ID", "")
	t.Setenv("MUSE_LOG_JSON", "")
	t.Setenv("MUSE_SUPPORT_ROOT", "")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}

	// Empty environment values count as unset.
	if s.BundleID != DefaultBundleID {
		t.Errorf("BundleID = %q, want %q", s.BundleID, DefaultBundleID)
	}
	if s.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", s.LogLevel)
	}
	if s.LogJSON {
		t.Error("LogJSON = true, want false")
	}
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("MUSE_LOG_LEVEL", "debug")
	t.Setenv("MUSE_LOG_JSON", "true")
	t.Setenv("MUSE_BUNDLE_ID", "com.example.muse")
	t.Setenv("MUSE_SUPPORT_ROOT", "/tmp/support")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}

	want := Settings{
		LogLevel:    "debug",
		LogJSON:     true,
		BundleID:    "com.example.muse",
		SupportRoot: "/tmp/support",
	}
	if *s != want {
		t.Errorf("LoadSettings() = %+v, want %+v", *s, want)
	}
}
