package support

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

var (
	ErrNoBundleIdentifier = errors.New("bundle identifier unavailable")
	ErrNoSupportRoot      = errors.New("application support root unavailable")
)

// RootFunc resolves the per-user application support root.
type RootFunc func() (string, error)

// DefaultRoot returns the platform's per-user application support root:
// ~/Library/Application Support on macOS, the XDG data home elsewhere.
func DefaultRoot() (string, error) {
	if xdg.DataHome == "" {
		return "", ErrNoSupportRoot
	}
	return xdg.DataHome, nil
}

// StaticRoot returns a RootFunc that always resolves to dir.
func StaticRoot(dir string) RootFunc {
	return func() (string, error) {
		if dir == "" {
			return "", ErrNoSupportRoot
		}
		return dir, nil
	}
}

// Dir computes <root>/<bundleID>.
func Dir(root RootFunc, bundleID string) (string, error) {
	if bundleID == "" {
		return "", ErrNoBundleIdentifier
	}
	if strings.ContainsAny(bundleID, `/\`) || bundleID == "." || bundleID == ".." {
		return "", fmt.Errorf("%w: invalid identifier %q", ErrNoBundleIdentifier, bundleID)
	}
	if root == nil {
		return "", ErrNoSupportRoot
	}
	base, err := root()
	if err != nil {
		return "", fmt.Errorf("resolve support root: %w", err)
	}
	if base == "" {
		return "", ErrNoSupportRoot
	}
	return filepath.Join(base, bundleID), nil
}
