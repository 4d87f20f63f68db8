package theme

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"
)

// PageTemplate is the Zola template the generated pages are rendered with.
const PageTemplate = "theme.html"

type frontMatter struct {
	Title       string     `toml:"title"`
	Description string     `toml:"description"`
	Template    string     `toml:"template"`
	Date        *time.Time `toml:"date,omitempty"`
	Taxonomies  taxonomies `toml:"taxonomies"`
	Extra       extra      `toml:"extra"`
}

type taxonomies struct {
	ThemeTags []string `toml:"theme-tags"`
}

type extra struct {
	Created        *time.Time `toml:"created,omitempty"`
	Updated        *time.Time `toml:"updated,omitempty"`
	Repository     string     `toml:"repository"`
	Homepage       string     `toml:"homepage"`
	MinimumVersion string     `toml:"minimum_version"`
	License        string     `toml:"license"`
	Demo           string     `toml:"demo"`
	Author         author     `toml:"author"`
}

type author struct {
	Name     string `toml:"name"`
	Homepage string `toml:"homepage"`
}

// PageData is passed to the page template.
type PageData struct {
	Theme *Theme
	// FrontMatter is the encoded TOML block, without the +++ fences.
	FrontMatter string
	Readme      string
}

// FrontMatter encodes the page front matter for t. Homepage falls back to the
// repository URL and tags to an empty list. Dates git did not provide, or
// that are not RFC 3339, are left out.
func FrontMatter(t *Theme) (string, error) {
	meta := t.Metadata
	if meta == nil {
		return "", &MetadataError{Theme: t.Name, Err: fmt.Errorf("no metadata loaded")}
	}

	homepage := meta.Homepage
	if homepage == "" {
		homepage = t.Repository
	}
	tags := meta.Tags
	if tags == nil {
		tags = []string{}
	}
	updated := parseDate(t.LastCommitDate)

	fm := frontMatter{
		Title:       meta.Name,
		Description: meta.Description,
		Template:    PageTemplate,
		Date:        updated,
		Taxonomies:  taxonomies{ThemeTags: tags},
		Extra: extra{
			Created:        parseDate(t.InitialCommitDate),
			Updated:        updated,
			Repository:     t.Repository,
			Homepage:       homepage,
			MinimumVersion: meta.MinVersion,
			License:        meta.License,
			Demo:           meta.Demo,
			Author: author{
				Name:     meta.Author.Name,
				Homepage: meta.Author.Homepage,
			},
		},
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(fm); err != nil {
		return "", fmt.Errorf("failed to encode front matter for theme '%s': %w", t.Name, err)
	}
	return buf.String(), nil
}

// Render executes the page template for t.
func Render(t *Theme, tmpl *template.Template) ([]byte, error) {
	fm, err := FrontMatter(t)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	data := PageData{Theme: t, FrontMatter: fm, Readme: t.Readme}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render page for theme '%s': %w", t.Name, err)
	}
	return buf.Bytes(), nil
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &ts
}
