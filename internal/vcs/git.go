package vcs

import (
	"context"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// DefaultBinary is the git executable looked up on PATH.
const DefaultBinary = "git"

// Git answers the two read-only questions the generator asks of a theme
// checkout: where it is hosted and when it was first and last committed to.
// Failures are logged and surface as empty strings.
type Git struct {
	binary string
	runner ProcessRunner
	logger hclog.Logger
}

// NewGit creates a Git client. An empty binary selects DefaultBinary and a
// nil runner selects an ExecRunner.
func NewGit(binary string, runner ProcessRunner) *Git {
	if binary == "" {
		binary = DefaultBinary
	}
	if runner == nil {
		runner = NewExecRunner()
	}
	return &Git{
		binary: binary,
		runner: runner,
		logger: hclog.NewNullLogger(),
	}
}

// WithLogger sets the logger used to report failed git invocations.
func (g *Git) WithLogger(logger hclog.Logger) *Git {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// RemoteURL returns the browser URL of the first remote of the repository
// in dir, or "" when it has none.
func (g *Git) RemoteURL(ctx context.Context, dir string) string {
	out, ok := g.run(ctx, dir, "remote", "-v")
	if !ok {
		return ""
	}
	line, _, _ := strings.Cut(out, "\n")
	return ParseRemoteLine(line)
}

// CommitDates returns the author dates of the oldest and newest commits of
// the repository in dir in strict ISO 8601. Both are "" without history.
func (g *Git) CommitDates(ctx context.Context, dir string) (first, last string) {
	out, ok := g.run(ctx, dir, "log", "--reverse", "--format=%aI")
	if !ok {
		return "", ""
	}

	var dates []string
	for line := range strings.Lines(out) {
		if line = strings.TrimSpace(line); line != "" {
			dates = append(dates, line)
		}
	}
	if len(dates) == 0 {
		return "", ""
	}
	return dates[0], dates[len(dates)-1]
}

func (g *Git) run(ctx context.Context, dir string, args ...string) (string, bool) {
	args = append([]string{"-C", dir}, args...)
	stdout, stderr, err := g.runner.Run(ctx, g.binary, args, nil)
	if err != nil {
		g.logger.Warn("git command failed", "dir", dir, "args", args[2:], "error", err,
			"stderr", strings.TrimSpace(string(stderr)))
		return "", false
	}
	return string(stdout), true
}

// ParseRemoteLine extracts the URL from one line of "git remote -v" output,
// e.g. "origin\tgit@github.com:owner/theme.git (fetch)". SSH shorthand URLs
// are rewritten to their https form without the .git suffix.
func ParseRemoteLine(line string) string {
	_, url, found := strings.Cut(line, "\t")
	if !found {
		return ""
	}
	url = strings.TrimSpace(strings.Replace(url, " (fetch)", "", 1))
	url = strings.TrimSuffix(url, " (push)")

	if rest, ok := strings.CutPrefix(url, "git@"); ok {
		host, path, found := strings.Cut(rest, ":")
		if !found {
			return url
		}
		url = "https://" + host + "/" + strings.TrimSuffix(path, ".git")
	}
	return url
}
