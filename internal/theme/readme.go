package theme

import (
	"regexp"
	"strings"
)

// ReadmeFile is the documentation file every theme ships.
const ReadmeFile = "README.md"

// mdAnchorLink matches a markdown link pointing at an in-page anchor,
// e.g. [Installation](#installation).
var mdAnchorLink = regexp.MustCompile(`\[([^\]\n]+)\]\(#[^)\s]+\)`)

// templateDelimiters turns Tera expressions and statements into comments
// so the site renderer prints them instead of evaluating them. The pairs are
// applied one after another, in this order.
var templateDelimiters = [][2]string{
	{"{{", "{{/*"},
	{"}}", "*/}}"},
	{"{%", "{%/*"},
	{"%}", "*/%}"},
}

// SanitizeReadme makes README text safe to embed in a content page.
// Template delimiters are neutralised, and anchor-only links are replaced
// by their label since the anchors do not exist on the generated page.
func SanitizeReadme(readme string) string {
	for _, pair := range templateDelimiters {
		readme = strings.ReplaceAll(readme, pair[0], pair[1])
	}
	return mdAnchorLink.ReplaceAllString(readme, "$1")
}
