// Package security guards the destructive filesystem steps of a run.
package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateDestination checks that recreating dest cannot delete the theme
// sources: dest must not be the source directory, one of its ancestors, or
// the filesystem root. A destination inside source is allowed.
func ValidateDestination(dest, source string) error {
	if strings.TrimSpace(dest) == "" {
		return fmt.Errorf("empty destination path")
	}

	absDest, err := filepath.Abs(filepath.Clean(dest))
	if err != nil {
		return fmt.Errorf("invalid destination path: %w", err)
	}
	absSource, err := filepath.Abs(filepath.Clean(source))
	if err != nil {
		return fmt.Errorf("invalid source directory: %w", err)
	}

	if filepath.Dir(absDest) == absDest {
		return fmt.Errorf("destination cannot be the filesystem root")
	}
	if absDest == absSource || isWithin(absSource, absDest) {
		return fmt.Errorf("destination %q would delete the source directory %q", dest, source)
	}
	return nil
}

// ValidatePageName checks that a theme name is usable as a single path
// element inside the destination.
func ValidatePageName(name string) error {
	if name == "" {
		return fmt.Errorf("empty page name")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid page name %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("page name %q contains a path separator", name)
	}
	return nil
}

// isWithin reports whether path is strictly below base.
func isWithin(path, base string) bool {
	return strings.HasPrefix(path, base+string(filepath.Separator))
}
