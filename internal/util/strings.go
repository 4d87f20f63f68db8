// Package util provides shared utility functions used across the application.
package util

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`\W`)
	whitespace = regexp.MustCompile(`\s+`)
)

// slugSeparators are turned into word breaks before punctuation is dropped.
var slugSeparators = strings.NewReplacer(" ", "_", "-", "_", ".", "_", "/", "_")

// Slugify simplifies an arbitrary string into a URL-friendly token.
// The result only contains a-z, 0-9 and single hyphens between words,
// for example "[Some] _ Article's Title--" becomes "some-articles-title".
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugSeparators.Replace(s)
	s = nonWord.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "_", " ")
	s = whitespace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, " ", "-")
}
