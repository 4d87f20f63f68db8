// Package discovery scans a source directory for theme checkouts.
package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/themegen/internal/report"
	"github.com/jmylchreest/themegen/internal/theme"
	"github.com/jmylchreest/themegen/internal/util"
)

// DefaultExcludes are directory names that never hold a theme: virtualenvs
// and the folder the site itself keeps its generated themes in.
var DefaultExcludes = []string{"env", "venv", "themes"}

// Options configures a scan.
type Options struct {
	// Source is the directory whose subdirectories are themes.
	Source string

	// Exclude lists directory names to skip. Nil selects DefaultExcludes.
	Exclude []string

	// Repo provides repository URL and commit dates. May be nil.
	Repo theme.RepositoryInfo

	Logger hclog.Logger
}

// Discover loads every valid theme under opts.Source in name order. Themes
// that fail a check are left out and the reason is recorded in the returned
// collector, exactly once per theme. An unreadable source is an error.
func Discover(ctx context.Context, opts Options) ([]*theme.Theme, *report.Collector, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	exclude := opts.Exclude
	if exclude == nil {
		exclude = DefaultExcludes
	}

	// ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(opts.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read source directory %q: %w", opts.Source, err)
	}

	collector := report.NewCollector()
	var themes []*theme.Theme

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") || slices.Contains(exclude, name) {
			continue
		}
		path := filepath.Join(opts.Source, name)
		if !isDir(path) {
			continue
		}

		t, err := load(ctx, name, path, opts.Repo, logger)
		if err != nil {
			logger.Debug("skipping theme", "theme", name, "error", err)
			collector.AddError(err)
			continue
		}
		themes = append(themes, t)
	}

	return themes, collector, nil
}

// load runs the checks for a single candidate in reporting order.
func load(ctx context.Context, name, path string, repo theme.RepositoryInfo, logger hclog.Logger) (*theme.Theme, error) {
	if _, found := util.FindFile(path, theme.ReadmeFile); !found {
		return nil, &theme.MissingFileError{Theme: name, File: theme.ReadmeFile}
	}

	screenshot, found := util.FindFile(path, theme.ScreenshotFile)
	if !found {
		return nil, &theme.MissingFileError{Theme: name, File: theme.ScreenshotFile}
	}
	// The screenshot is copied as-is, so a format we cannot decode is only
	// worth a warning.
	shotPath := filepath.Join(path, screenshot)
	if info, err := theme.InspectScreenshot(shotPath); err != nil {
		logger.Warn("screenshot is not a recognised image", "theme", name, "file", screenshot, "size", fileSize(shotPath), "error", err)
	} else {
		logger.Debug("screenshot", "theme", name, "format", info.Format, "width", info.Width, "height", info.Height)
	}

	t, err := theme.Load(ctx, name, path, repo, logger)
	if err != nil {
		return nil, err
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return info.Size()
}

// isDir follows symlinks, so linked theme checkouts are picked up.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
