// Package config loads runtime settings from the environment and reads the
// support files seeded into the application support directory:
// application.json (client settings) and token.json (the saved auth token).
package config
