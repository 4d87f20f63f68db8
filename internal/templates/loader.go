// Package templates provides the page and section templates with custom override support.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/hashicorp/go-hclog"
)

const (
	// Page renders one theme's index.md.
	Page = "page.md.tmpl"
	// Index renders the section's _index.md.
	Index = "index.md.tmpl"
)

//go:embed defaults/*.tmpl
var defaultFS embed.FS

// ErrExists is returned when dumping over an existing custom template.
var ErrExists = errors.New("custom template already exists")

// Loader handles loading templates with support for custom overrides.
// It checks customDir first and falls back to the embedded defaults.
type Loader struct {
	defaults  fs.FS
	customDir string // Empty disables overrides
	logger    hclog.Logger
}

// New creates a loader over the embedded defaults. customDir may be empty.
func New(customDir string) *Loader {
	defaults, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return &Loader{
		defaults:  defaults,
		customDir: customDir,
		logger:    hclog.NewNullLogger(),
	}
}

// WithLogger sets the logger used to report where templates come from.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// CustomDir returns the override directory, or "" when overrides are disabled.
func (l *Loader) CustomDir() string {
	return l.customDir
}

// CustomPath returns the path where a custom template would be located.
func (l *Loader) CustomPath(name string) string {
	return filepath.Join(l.customDir, name)
}

// Load reads a template file, checking for custom overrides first.
// Returns the template content and whether it was loaded from a custom override.
func (l *Loader) Load(name string) (content []byte, fromCustom bool, err error) {
	if l.customDir != "" {
		customPath := l.CustomPath(name)
		content, err := os.ReadFile(customPath)
		if err == nil {
			l.logger.Debug("using custom template", "path", customPath)
			return content, true, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("failed to read custom template %q: %w", customPath, err)
		}
	}

	l.logger.Debug("using embedded template", "name", name)
	content, err = fs.ReadFile(l.defaults, name)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", name, err)
	}
	return content, false, nil
}

// Parse loads and parses the named template.
func (l *Loader) Parse(name string) (*template.Template, error) {
	content, _, err := l.Load(name)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %q: %w", name, err)
	}
	return tmpl, nil
}

// List returns the names of all embedded templates.
func (l *Loader) List() ([]string, error) {
	var names []string
	err := fs.WalkDir(l.defaults, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".tmpl" {
			names = append(names, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}
	return names, nil
}

// Dump writes an embedded template to the custom directory.
// If force is false, it will not overwrite an existing custom template.
func (l *Loader) Dump(name string, force bool) error {
	if l.customDir == "" {
		return fmt.Errorf("no custom template directory configured")
	}

	content, err := fs.ReadFile(l.defaults, name)
	if err != nil {
		return fmt.Errorf("failed to read embedded template %q: %w", name, err)
	}

	outputPath := l.CustomPath(name)
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, outputPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", filepath.Dir(outputPath), err)
	}
	if err := os.WriteFile(outputPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}
	return nil
}

// DumpAll writes all embedded templates to the custom directory.
// Existing templates are skipped unless force is set; the skipped ones are
// reported together in the returned error.
func (l *Loader) DumpAll(force bool) ([]string, error) {
	names, err := l.List()
	if err != nil {
		return nil, err
	}

	var dumped []string
	var skipped []string
	for _, name := range names {
		if err := l.Dump(name, force); err != nil {
			if errors.Is(err, ErrExists) {
				skipped = append(skipped, err.Error())
				continue
			}
			return dumped, err
		}
		dumped = append(dumped, l.CustomPath(name))
	}

	if len(skipped) > 0 {
		return dumped, fmt.Errorf("%s", strings.Join(skipped, "; "))
	}
	return dumped, nil
}
