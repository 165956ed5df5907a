package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const ApplicationFile = "application.json"

// Application holds the streaming client credentials shipped in
// application.json.
type Application struct {
	ClientID     string   `mapstructure:"client_id"`
	ClientSecret string   `mapstructure:"client_secret"`
	RedirectURI  string   `mapstructure:"redirect_uri"`
	Scopes       []string `mapstructure:"scopes"`
}

// Configured reports whether client credentials have been filled in.
func (a *Application) Configured() bool {
	return a.ClientID != "" && a.ClientSecret != ""
}

// LoadApplication reads application.json from dir.
func LoadApplication(dir string) (*Application, error) {
	v, err := readJSON(filepath.Join(dir, ApplicationFile))
	if err != nil {
		return nil, err
	}

	var app Application
	if err := v.Unmarshal(&app); err != nil {
		return nil, fmt.Errorf("decode %s: %w", ApplicationFile, err)
	}
	return &app, nil
}

func readJSON(path string) (*viper.Viper, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}
