package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const TokenFile = "token.json"

// Token is the saved authorization token.
type Token struct {
	AccessToken  string `mapstructure:"access_token"`
	RefreshToken string `mapstructure:"refresh_token"`
	TokenType    string `mapstructure:"token_type"`
	ExpiresAt    int64  `mapstructure:"expires_at"`
}

// Valid reports whether the token can be used at now.
func (t *Token) Valid(now time.Time) bool {
	return t.AccessToken != "" && now.Before(time.Unix(t.ExpiresAt, 0))
}

// TokenStore persists the token in token.json inside the support directory.
type TokenStore struct {
	path string
}

func NewTokenStore(dir string) *TokenStore {
	return &TokenStore{path: filepath.Join(dir, TokenFile)}
}

func (s *TokenStore) Path() string {
	return s.path
}

func (s *TokenStore) Load() (*Token, error) {
	v, err := readJSON(s.path)
	if err != nil {
		return nil, err
	}

	var tok Token
	if err := v.Unmarshal(&tok); err != nil {
		return nil, fmt.Errorf("decode %s: %w", TokenFile, err)
	}
	return &tok, nil
}

// Save replaces the stored token.
func (s *TokenStore) Save(tok *Token) error {
	v := viper.New()
	v.SetConfigType("json")
	v.Set("access_token", tok.AccessToken)
	v.Set("refresh_token", tok.RefreshToken)
	v.Set("token_type", tok.TokenType)
	v.Set("expires_at", tok.ExpiresAt)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
