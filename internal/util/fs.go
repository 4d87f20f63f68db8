package util

import (
	"os"
	"strings"
)

// FindFile looks up name in dir regardless of case and returns the
// on-disk spelling of the first match. Entries are checked in name order.
// A missing or unreadable directory is reported as not found.
func FindFile(dir, name string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if strings.EqualFold(entry.Name(), name) {
			return entry.Name(), true
		}
	}
	return "", false
}
