// Package support seeds the per-user application support directory with the
// files bundled in the application.
//
// Provisioning is best effort. Every failure is logged where it happens and
// swallowed; a partially provisioned directory is a valid state and never
// blocks startup.
package support

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"muse/internal/logger"
)

const component = "Support"

// Report describes what a Provision run did. It is informational only.
type Report struct {
	Dir         string
	CreatedDir  bool
	CopiedFiles []string
	Failures    []error
}

// Provisioner owns the support directory for one bundle identifier.
type Provisioner struct {
	bundleID string
	root     RootFunc
	bundle   fs.FS
	files    []File
	logger   logger.Logger
}

type Option func(*Provisioner)

// WithRoot overrides the application support root resolver.
func WithRoot(root RootFunc) Option {
	return func(p *Provisioner) { p.root = root }
}

// WithFiles overrides the set of files to provision.
func WithFiles(files ...File) Option {
	return func(p *Provisioner) { p.files = files }
}

func WithLogger(log logger.Logger) Option {
	return func(p *Provisioner) { p.logger = log }
}

// NewProvisioner creates a Provisioner that copies files out of bundle into
// <root>/<bundleID>.
func NewProvisioner(bundleID string, bundle fs.FS, opts ...Option) *Provisioner {
	p := &Provisioner{
		bundleID: bundleID,
		root:     DefaultRoot,
		bundle:   bundle,
		files:    DefaultFiles,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dir returns the support directory path.
func (p *Provisioner) Dir() (string, error) {
	return Dir(p.root, p.bundleID)
}

// Files returns the support files this provisioner manages.
func (p *Provisioner) Files() []File {
	return append([]File(nil), p.files...)
}

// DirectoryExists reports whether the support path exists and is a directory.
func (p *Provisioner) DirectoryExists() bool {
	dir, err := p.Dir()
	if err != nil {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// FilesExist reports whether every support file is present in the support
// directory.
func (p *Provisioner) FilesExist() bool {
	dir, err := p.Dir()
	if err != nil {
		return false
	}
	for _, f := range p.files {
		if _, err := os.Stat(filepath.Join(dir, f.Name())); err != nil {
			return false
		}
	}
	return true
}

// CreateDirectory creates the support directory. Parent directories are not
// created. Failures are logged and otherwise ignored.
func (p *Provisioner) CreateDirectory() {
	if _, err := p.createDirectory(); err != nil {
		p.logger.Warning(component, "support directory not created", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// CopyFiles copies every bundled support file into the support directory.
// An existing destination makes that copy fail and is left untouched; the
// remaining files are still attempted.
func (p *Provisioner) CopyFiles() {
	p.copyFiles()
}

// Provision runs the startup sequence: create the directory if it is absent,
// then copy the support files if any of them is absent.
func (p *Provisioner) Provision() Report {
	var report Report

	dir, err := p.Dir()
	if err != nil {
		p.logger.Warning(component, "support path unavailable", map[string]interface{}{
			"bundle_id": p.bundleID,
			"error":     err.Error(),
		})
		report.Failures = append(report.Failures, err)
		return report
	}
	report.Dir = dir

	if !p.DirectoryExists() {
		created, err := p.createDirectory()
		if err != nil {
			p.logger.Warning(component, "support directory not created", map[string]interface{}{
				"error": err.Error(),
			})
			report.Failures = append(report.Failures, err)
		}
		report.CreatedDir = created
	}

	if !p.FilesExist() {
		copied, failures := p.copyFiles()
		report.CopiedFiles = copied
		report.Failures = append(report.Failures, failures...)
	}

	p.logger.Info(component, "provisioning finished", map[string]interface{}{
		"dir":         dir,
		"created_dir": report.CreatedDir,
		"copied":      report.CopiedFiles,
		"failures":    len(report.Failures),
	})

	return report
}

func (p *Provisioner) createDirectory() (bool, error) {
	dir, err := p.Dir()
	if err != nil {
		return false, err
	}
	if err := os.Mkdir(dir, 0o755); err != nil {
		return false, fmt.Errorf("create support directory: %w", err)
	}
	p.logger.Info(component, "support directory created", map[string]interface{}{
		"dir": dir,
	})
	return true, nil
}

func (p *Provisioner) copyFiles() ([]string, []error) {
	dir, err := p.Dir()
	if err != nil {
		return nil, []error{err}
	}

	var copied []string
	var failures []error
	for _, f := range p.files {
		dest := filepath.Join(dir, f.Name())
		if err := p.copyFile(f.Name(), dest); err != nil {
			p.logger.Debug(component, "support file not copied", map[string]interface{}{
				"file":  f.Name(),
				"error": err.Error(),
			})
			failures = append(failures, err)
			continue
		}
		copied = append(copied, f.Name())
	}
	return copied, failures
}

// copyFile copies name from the bundle to dest. dest must not exist.
func (p *Provisioner) copyFile(name, dest string) (err error) {
	if p.bundle == nil {
		return fmt.Errorf("copy %s: %w", name, fs.ErrNotExist)
	}

	src, err := p.bundle.Open(name)
	if err != nil {
		return fmt.Errorf("open bundled %s: %w", name, err)
	}
	defer src.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", dest, cerr)
		}
		if err != nil {
			err = errors.Join(err, removePartial(dest))
		}
	}()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("copy %s: %w", name, err)
	}
	return nil
}

func removePartial(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove partial %s: %w", path, err)
	}
	return nil
}
