package assets

import (
	"encoding/json"
	"io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestEmbeddedSupportFiles(t *testing.T) {
	for _, name := range []string{"application.json", "token.json"} {
		data, err := fs.ReadFile(Embedded(), name)
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", name, err)
		}
		if !json.Valid(data) {
			t.Errorf("%s is not valid JSON", name)
		}
	}
}

func TestResourcesDir(t *testing.T) {
	tests := []struct {
		name string
		exe  string
		want string
		ok   bool
	}{
		{
			name: "inside app bundle",
			exe:  filepath.Join("/Applications", "Muse.app", "Contents", "MacOS", "Muse"),
			want: filepath.Join("/Applications", "Muse.app", "Contents", "Resources"),
			ok:   true,
		},
		{
			name: "plain binary",
			exe:  filepath.Join("/usr", "local", "bin", "muse"),
			ok:   false,
		},
		{
			name: "MacOS directory outside a bundle",
			exe:  filepath.Join("/tmp", "Contents", "MacOS", "muse"),
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResourcesDir(tt.exe)
			if ok != tt.ok {
				t.Fatalf("ResourcesDir(%q) ok = %v, want %v", tt.exe, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ResourcesDir(%q) = %q, want %q", tt.exe, got, tt.want)
			}
		})
	}
}

func TestOverlayPrefersPrimary(t *testing.T) {
	primary := fstest.MapFS{
		"application.json": {Data: []byte(`{"client_id":"bundled"}`)},
	}
	fallback := fstest.MapFS{
		"application.json": {Data: []byte(`{"client_id":"embedded"}`)},
		"token.json":       {Data: []byte(`{}`)},
	}
	fsys := Overlay(primary, fallback)

	data, err := fs.ReadFile(fsys, "application.json")
	if err != nil {
		t.Fatalf("ReadFile(application.json): %v", err)
	}
	if string(data) != `{"client_id":"bundled"}` {
		t.Errorf("application.json = %s, want primary copy", data)
	}

	data, err = fs.ReadFile(fsys, "token.json")
	if err != nil {
		t.Fatalf("ReadFile(token.json): %v", err)
	}
	if string(data) != `{}` {
		t.Errorf("token.json = %s, want fallback copy", data)
	}

	if _, err := fsys.Open("missing.json"); err == nil {
		t.Error("Open(missing.json) succeeded, want error")
	}
}
