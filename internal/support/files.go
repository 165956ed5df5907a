package support

// File identifies a bundled support asset by resource name and extension.
// The destination filename inside the support directory is the same.
type File struct {
	Resource  string
	Extension string
}

// Name returns the file name, e.g. "token.json".
func (f File) Name() string {
	return f.Resource + "." + f.Extension
}

// DefaultFiles are the files seeded into the support directory on first run.
// token.json ends up holding the saved auth token, so it must never be
// overwritten once present.
var DefaultFiles = []File{
	{Resource: "application", Extension: "json"},
	{Resource: "token", Extension: "json"},
}
