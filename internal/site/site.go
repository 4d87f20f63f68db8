// Package site writes the content tree the static-site renderer consumes:
// a section index plus one page folder per theme.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/hashicorp/go-hclog"
	"github.com/natefinch/atomic"

	"github.com/jmylchreest/themegen/internal/discovery"
	"github.com/jmylchreest/themegen/internal/report"
	"github.com/jmylchreest/themegen/internal/security"
	"github.com/jmylchreest/themegen/internal/templates"
	"github.com/jmylchreest/themegen/internal/theme"
)

const (
	// IndexFile is the section document written at the destination root.
	IndexFile = "_index.md"
	// PageFile is the document written in each theme folder.
	PageFile = "index.md"
)

// ErrCollision is returned when a theme's page folder already exists.
var ErrCollision = errors.New("page folder already exists")

// CollisionError reports a theme whose page folder was already created.
type CollisionError struct {
	Theme string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("Theme '%s' collides with an existing page folder.", e.Theme)
}

func (e *CollisionError) Unwrap() error { return ErrCollision }

// Options configures a Generator.
type Options struct {
	// Source is the directory holding the theme checkouts.
	Source string
	// Exclude lists directory names discovery skips. Nil selects the defaults.
	Exclude []string
	// DryRun renders every page without touching the destination.
	DryRun bool
}

// Generator turns a directory of themes into site content.
type Generator struct {
	opts      Options
	repo      theme.RepositoryInfo
	templates *templates.Loader
	logger    hclog.Logger
}

// New creates a Generator. repo may be nil, in which case pages carry no
// repository URL or dates.
func New(opts Options, repo theme.RepositoryInfo, loader *templates.Loader, logger hclog.Logger) *Generator {
	if loader == nil {
		loader = templates.New("")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Generator{
		opts:      opts,
		repo:      repo,
		templates: loader,
		logger:    logger,
	}
}

// Discover lists the valid themes and the problems found on the way.
func (g *Generator) Discover(ctx context.Context) ([]*theme.Theme, *report.Collector, error) {
	return g.discover(ctx, g.opts.Exclude)
}

func (g *Generator) discover(ctx context.Context, exclude []string) ([]*theme.Theme, *report.Collector, error) {
	return discovery.Discover(ctx, discovery.Options{
		Source:  g.opts.Source,
		Exclude: exclude,
		Repo:    g.repo,
		Logger:  g.logger,
	})
}

// excludesFor adds the top-level source entry containing dest, if any, to
// the exclusion list so a previous run's output is not mistaken for a theme.
func (g *Generator) excludesFor(dest string) []string {
	exclude := g.opts.Exclude
	if exclude == nil {
		exclude = discovery.DefaultExcludes
	}

	absSource, err := filepath.Abs(g.opts.Source)
	if err != nil {
		return exclude
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return exclude
	}
	rel, err := filepath.Rel(absSource, absDest)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return exclude
	}

	top, _, _ := strings.Cut(filepath.ToSlash(rel), "/")
	return append(slices.Clone(exclude), top)
}

// Build recreates dest from scratch and writes the section index and one
// page per valid theme. Per-theme failures end up in the summary; only
// problems with the source or the destination itself return an error.
func (g *Generator) Build(ctx context.Context, dest string) (report.Summary, error) {
	if err := security.ValidateDestination(dest, g.opts.Source); err != nil {
		return report.Summary{}, err
	}

	pageTmpl, err := g.templates.Parse(templates.Page)
	if err != nil {
		return report.Summary{}, err
	}
	index, err := g.renderIndex()
	if err != nil {
		return report.Summary{}, err
	}

	themes, collector, err := g.discover(ctx, g.excludesFor(dest))
	if err != nil {
		return report.Summary{}, err
	}

	if g.opts.DryRun {
		return g.dryRun(themes, pageTmpl, collector), nil
	}

	if err := recreate(dest); err != nil {
		return report.Summary{}, err
	}
	if err := writeFile(filepath.Join(dest, IndexFile), bytes.NewReader(index)); err != nil {
		return report.Summary{}, fmt.Errorf("failed to write %s: %w", IndexFile, err)
	}

	processed := 0
	pages := report.NewCollector()
	for _, t := range themes {
		if err := ctx.Err(); err != nil {
			return report.Summary{}, err
		}
		if err := g.WritePage(t, pageTmpl, dest); err != nil {
			pages.AddError(err)
			continue
		}
		processed++
	}
	collector.Merge(pages)

	return report.Summary{Processed: processed, Errors: collector.Errors()}, nil
}

// WritePage creates dest/<theme name> holding the rendered page and a copy
// of the screenshot. On failure nothing is left behind for the theme.
func (g *Generator) WritePage(t *theme.Theme, tmpl *template.Template, dest string) error {
	if err := security.ValidatePageName(t.Name); err != nil {
		return fmt.Errorf("Theme '%s' cannot be written: %w", t.Name, err)
	}

	content, err := theme.Render(t, tmpl)
	if err != nil {
		return err
	}

	pageDir := filepath.Join(dest, t.Name)
	if err := os.Mkdir(pageDir, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return &CollisionError{Theme: t.Name}
		}
		return fmt.Errorf("Theme '%s' cannot be written: %w", t.Name, err)
	}

	g.logger.Info("writing page", "theme", t.Name, "dir", pageDir)
	if err := writePage(t, content, pageDir); err != nil {
		if rmErr := os.RemoveAll(pageDir); rmErr != nil {
			g.logger.Warn("failed to clean up page folder", "dir", pageDir, "error", rmErr)
		}
		return fmt.Errorf("Theme '%s' cannot be written: %w", t.Name, err)
	}
	return nil
}

func writePage(t *theme.Theme, content []byte, pageDir string) error {
	if err := writeFile(filepath.Join(pageDir, PageFile), bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write %s: %w", PageFile, err)
	}
	if err := copyFile(t.ScreenshotPath(), filepath.Join(pageDir, theme.ScreenshotFile)); err != nil {
		return fmt.Errorf("failed to copy screenshot: %w", err)
	}
	return nil
}

func (g *Generator) dryRun(themes []*theme.Theme, tmpl *template.Template, collector *report.Collector) report.Summary {
	processed := 0
	pages := report.NewCollector()
	for _, t := range themes {
		if _, err := theme.Render(t, tmpl); err != nil {
			pages.AddError(err)
			continue
		}
		g.logger.Info("would write page", "theme", t.Name)
		processed++
	}
	collector.Merge(pages)
	return report.Summary{Processed: processed, Errors: collector.Errors()}
}

func (g *Generator) renderIndex() ([]byte, error) {
	tmpl, err := g.templates.Parse(templates.Index)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", IndexFile, err)
	}
	return buf.Bytes(), nil
}

// recreate deletes dest if present and creates it empty. The two steps are
// not atomic: a crash in between leaves no destination at all.
func recreate(dest string) error {
	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("failed to clear destination %q: %w", dest, err)
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("failed to create destination %q: %w", dest, err)
	}
	return nil
}

// copyFile copies src to dst byte for byte.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	return writeFile(dst, in)
}

// writeFile atomically replaces path with the content of r, readable by all.
func writeFile(path string, r io.Reader) error {
	if err := atomic.WriteFile(path, r); err != nil {
		return err
	}
	return os.Chmod(path, 0o644)
}
