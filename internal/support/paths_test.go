package support

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDir(t *testing.T) {
	got, err := Dir(StaticRoot("/Users/me/Library/Application Support"), "com.edgeapps.muse")
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	want := filepath.Join("/Users/me/Library/Application Support", "com.edgeapps.muse")
	if got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestDirInvalidIdentifier(t *testing.T) {
	for _, id := range []string{"", ".", "..", "a/b", `a\b`} {
		if _, err := Dir(StaticRoot(t.TempDir()), id); !errors.Is(err, ErrNoBundleIdentifier) {
			t.Errorf("Dir(%q) error = %v, want ErrNoBundleIdentifier", id, err)
		}
	}
}

func TestDefaultRootIsAbsolute(t *testing.T) {
	root, err := DefaultRoot()
	if err != nil {
		t.Skipf("no application support root in this environment: %v", err)
	}
	if !filepath.IsAbs(root) {
		t.Errorf("DefaultRoot() = %q is not absolute", root)
	}
}
