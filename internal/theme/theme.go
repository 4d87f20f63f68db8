// Package theme loads a single theme checkout and renders it as a content page.
package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/themegen/internal/util"
)

// RepositoryInfo answers the version control questions asked of a theme.
// *vcs.Git implements it.
type RepositoryInfo interface {
	RemoteURL(ctx context.Context, dir string) string
	CommitDates(ctx context.Context, dir string) (first, last string)
}

// Theme is one discovered theme directory. It is built once by Load and
// not modified afterwards.
type Theme struct {
	// Name is the directory name and the name of the generated page folder.
	Name string
	Path string

	Metadata *Metadata

	// Readme is the sanitised README text.
	Readme string

	// ReadmeFile and Screenshot are the on-disk spellings of the files.
	ReadmeFile string
	Screenshot string

	// Repository is the browser URL of the first git remote, or "".
	Repository string

	// InitialCommitDate and LastCommitDate are ISO 8601 author dates, or "".
	InitialCommitDate string
	LastCommitDate    string
}

// Load reads the theme in path. A theme.toml that cannot be decoded yields a
// *MetadataError and nothing else is read. README and screenshot must exist.
func Load(ctx context.Context, name, path string, repo RepositoryInfo, logger hclog.Logger) (*Theme, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger.Info("loading theme", "theme", name)

	meta, err := LoadMetadata(filepath.Join(path, MetadataFile))
	if err != nil {
		return nil, &MetadataError{Theme: name, Err: err}
	}

	t := &Theme{
		Name:     name,
		Path:     path,
		Metadata: meta,
	}

	var found bool
	if t.ReadmeFile, found = util.FindFile(path, ReadmeFile); !found {
		return nil, &MissingFileError{Theme: name, File: ReadmeFile}
	}
	if t.Screenshot, found = util.FindFile(path, ScreenshotFile); !found {
		return nil, &MissingFileError{Theme: name, File: ScreenshotFile}
	}

	readme, err := os.ReadFile(filepath.Join(path, t.ReadmeFile))
	if err != nil {
		return nil, fmt.Errorf("theme '%s': failed to read %s: %w", name, t.ReadmeFile, err)
	}
	t.Readme = SanitizeReadme(string(readme))

	if repo != nil {
		t.Repository = repo.RemoteURL(ctx, path)
		t.InitialCommitDate, t.LastCommitDate = repo.CommitDates(ctx, path)
	}
	logger.Debug("theme loaded", "theme", name, "repository", t.Repository,
		"created", t.InitialCommitDate, "updated", t.LastCommitDate)

	return t, nil
}

// Validate reports the required metadata fields the theme does not set as
// a *MissingFieldsError.
func (t *Theme) Validate() error {
	missing, err := t.Metadata.MissingFields()
	if err != nil {
		return fmt.Errorf("theme '%s': %w", t.Name, err)
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Theme: t.Name, Fields: missing}
	}
	return nil
}

// ScreenshotPath returns the location of the screenshot inside the theme.
func (t *Theme) ScreenshotPath() string {
	return filepath.Join(t.Path, t.Screenshot)
}
