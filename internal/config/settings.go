package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. MUSE_LOG_LEVEL.
	EnvPrefix = "MUSE"
	// DefaultBundleID names the application support directory.
	DefaultBundleID = "com.edgeapps.muse"
)

// Settings are the process-level knobs read at startup.
type Settings struct {
	LogLevel    string `mapstructure:"log_level"`
	LogJSON     bool   `mapstructure:"log_json"`
	BundleID    string `mapstructure:"bundle_id"`
	SupportRoot string `mapstructure:"support_root"`
}

func DefaultSettings() Settings {
	return Settings{
		LogLevel: "info",
		BundleID: DefaultBundleID,
	}
}

// LoadSettings reads Settings from MUSE_* environment variables on top of
// the defaults.
func LoadSettings() (*Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_json", defaults.LogJSON)
	v.SetDefault("bundle_id", defaults.BundleID)
	v.SetDefault("support_root", defaults.SupportRoot)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &s, nil
}
