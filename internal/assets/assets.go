// Package assets holds the support files shipped with the application.
//
// Defaults are embedded in the binary. When the executable runs from inside
// a macOS .app bundle, files present in Contents/Resources take precedence so
// a packaged build can ship its own copies.
package assets

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed application.json token.json
var embedded embed.FS

// Embedded returns the support files compiled into the binary.
func Embedded() fs.FS {
	return embedded
}

// Bundle returns the support files for the running executable.
func Bundle() fs.FS {
	exe, err := os.Executable()
	if err != nil {
		return embedded
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir, ok := ResourcesDir(exe)
	if !ok {
		return embedded
	}
	return Overlay(os.DirFS(dir), embedded)
}

// ResourcesDir returns the Contents/Resources directory of the .app bundle
// containing exe, if exe lives at <name>.app/Contents/MacOS/<exe>.
func ResourcesDir(exe string) (string, bool) {
	macOS := filepath.Dir(exe)
	contents := filepath.Dir(macOS)
	app := filepath.Dir(contents)

	if filepath.Base(macOS) != "MacOS" || filepath.Base(contents) != "Contents" {
		return "", false
	}
	if !strings.HasSuffix(app, ".app") {
		return "", false
	}
	return filepath.Join(contents, "Resources"), true
}

type overlayFS struct {
	primary  fs.FS
	fallback fs.FS
}

// Overlay returns an fs.FS that opens names from primary and falls back to
// fallback when primary does not have them.
func Overlay(primary, fallback fs.FS) fs.FS {
	return overlayFS{primary: primary, fallback: fallback}
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.fallback.Open(name)
}
