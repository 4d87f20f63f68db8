package theme

import (
	"strings"
	"testing"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
)

// decodedPage mirrors the front matter layout for assertions.
type decodedPage struct {
	Title       string     `toml:"title"`
	Description string     `toml:"description"`
	Template    string     `toml:"template"`
	Date        *time.Time `toml:"date"`
	Taxonomies  struct {
		ThemeTags []string `toml:"theme-tags"`
	} `toml:"taxonomies"`
	Extra struct {
		Created        *time.Time `toml:"created"`
		Updated        *time.Time `toml:"updated"`
		Repository     string     `toml:"repository"`
		Homepage       string     `toml:"homepage"`
		MinimumVersion string     `toml:"minimum_version"`
		License        string     `toml:"license"`
		Demo           string     `toml:"demo"`
		Author         struct {
			Name     string `toml:"name"`
			Homepage string `toml:"homepage"`
		} `toml:"author"`
	} `toml:"extra"`
}

func midnight() *Theme {
	return &Theme{
		Name: "midnight",
		Metadata: &Metadata{
			Name:        "Midnight",
			Description: "dark theme",
			MinVersion:  "0.1",
			License:     "MIT",
			Author:      Author{Name: "Alice"},
		},
		Readme:            "# Midnight\n",
		Repository:        "https://github.com/alice/midnight",
		InitialCommitDate: "2020-01-01T00:00:00Z",
		LastCommitDate:    "2024-06-01T12:00:00+02:00",
	}
}

func decodeFrontMatter(t *testing.T, fm string) decodedPage {
	t.Helper()
	var page decodedPage
	md, err := toml.Decode(fm, &page)
	if err != nil {
		t.Fatalf("front matter is not valid TOML: %v\n%s", err, fm)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		t.Errorf("unexpected keys in front matter: %v", undecoded)
	}
	return page
}

func TestFrontMatterFallbacks(t *testing.T) {
	fm, err := FrontMatter(midnight())
	if err != nil {
		t.Fatalf("FrontMatter() error = %v", err)
	}
	page := decodeFrontMatter(t, fm)

	if page.Title != "Midnight" || page.Description != "dark theme" {
		t.Errorf("unexpected title/description %q, %q", page.Title, page.Description)
	}
	if page.Template != "theme.html" {
		t.Errorf("unexpected template %q", page.Template)
	}
	if page.Taxonomies.ThemeTags == nil || len(page.Taxonomies.ThemeTags) != 0 {
		t.Errorf("expected empty tag list, got %#v", page.Taxonomies.ThemeTags)
	}
	if page.Extra.Homepage != "https://github.com/alice/midnight" {
		t.Errorf("homepage should fall back to repository, got %q", page.Extra.Homepage)
	}
	if page.Extra.Demo != "" || page.Extra.Author.Homepage != "" {
		t.Errorf("expected empty demo and author homepage, got %q, %q", page.Extra.Demo, page.Extra.Author.Homepage)
	}
	if page.Extra.MinimumVersion != "0.1" || page.Extra.License != "MIT" || page.Extra.Author.Name != "Alice" {
		t.Errorf("unexpected extra section %+v", page.Extra)
	}
	if !strings.Contains(fm, "theme-tags = []") {
		t.Errorf("expected literal empty tag list in:\n%s", fm)
	}
	if !strings.Contains(fm, `demo = ""`) {
		t.Errorf("expected literal empty demo in:\n%s", fm)
	}

	updated, _ := time.Parse(time.RFC3339, "2024-06-01T12:00:00+02:00")
	created, _ := time.Parse(time.RFC3339, "2020-01-01T00:00:00Z")
	if page.Date == nil || !page.Date.Equal(updated) {
		t.Errorf("date should be the last commit date, got %v", page.Date)
	}
	if page.Extra.Updated == nil || !page.Extra.Updated.Equal(updated) {
		t.Errorf("unexpected updated %v", page.Extra.Updated)
	}
	if page.Extra.Created == nil || !page.Extra.Created.Equal(created) {
		t.Errorf("unexpected created %v", page.Extra.Created)
	}
	if !strings.Contains(fm, "date = 2024-06-01T12:00:00+02:00") {
		t.Errorf("expected date to keep its offset in:\n%s", fm)
	}
}

func TestFrontMatterOptionalFields(t *testing.T) {
	th := midnight()
	th.Metadata.Homepage = "https://midnight.example"
	th.Metadata.Tags = []string{"dark", "minimal"}
	th.Metadata.Demo = "https://demo.midnight.example"
	th.Metadata.Author.Homepage = "https://alice.example"
	th.Metadata.Description = `says "hello"`

	fm, err := FrontMatter(th)
	if err != nil {
		t.Fatalf("FrontMatter() error = %v", err)
	}
	page := decodeFrontMatter(t, fm)

	if page.Extra.Homepage != "https://midnight.example" {
		t.Errorf("unexpected homepage %q", page.Extra.Homepage)
	}
	if diff := cmp.Diff([]string{"dark", "minimal"}, page.Taxonomies.ThemeTags); diff != "" {
		t.Errorf("unexpected tags (-want +got):\n%s", diff)
	}
	if page.Extra.Demo != "https://demo.midnight.example" {
		t.Errorf("unexpected demo %q", page.Extra.Demo)
	}
	if page.Extra.Author.Homepage != "https://alice.example" {
		t.Errorf("unexpected author homepage %q", page.Extra.Author.Homepage)
	}
	if page.Description != `says "hello"` {
		t.Errorf("description not escaped correctly, got %q", page.Description)
	}
}

func TestFrontMatterWithoutHistory(t *testing.T) {
	th := midnight()
	th.Repository = ""
	th.InitialCommitDate = ""
	th.LastCommitDate = "not a date"

	fm, err := FrontMatter(th)
	if err != nil {
		t.Fatalf("FrontMatter() error = %v", err)
	}
	page := decodeFrontMatter(t, fm)

	if page.Date != nil || page.Extra.Created != nil || page.Extra.Updated != nil {
		t.Errorf("expected dates to be omitted, got %v %v %v", page.Date, page.Extra.Created, page.Extra.Updated)
	}
	if page.Extra.Homepage != "" || page.Extra.Repository != "" {
		t.Errorf("expected empty urls, got %q, %q", page.Extra.Homepage, page.Extra.Repository)
	}
}

func TestFrontMatterNoMetadata(t *testing.T) {
	_, err := FrontMatter(&Theme{Name: "ghost"})
	if err == nil {
		t.Fatal("expected error for theme without metadata")
	}
}

func TestRender(t *testing.T) {
	tmpl := template.Must(template.New("page").Parse("+++\n{{ .FrontMatter }}+++\n\n{{ .Readme }}\n"))

	got, err := Render(midnight(), tmpl)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	page := string(got)
	if !strings.HasPrefix(page, "+++\ntitle = \"Midnight\"\n") {
		t.Errorf("page should start with the front matter, got:\n%s", page)
	}
	if !strings.HasSuffix(page, "+++\n\n# Midnight\n\n") {
		t.Errorf("page should end with the readme, got:\n%s", page)
	}

	parts := strings.SplitN(page, "+++\n", 3)
	if len(parts) != 3 {
		t.Fatalf("expected two front matter fences, got:\n%s", page)
	}
	decodeFrontMatter(t, parts[1])
}
