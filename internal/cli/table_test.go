package cli

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable("Name", "License")

	table.AddRow("midnight", "MIT")
	table.AddRow("alpha")
	table.AddRow("beta", "GPL-3.0", "extra")

	want := [][]string{
		{"midnight", "MIT"},
		{"alpha", ""},
		{"beta", "GPL-3.0"},
	}
	if diff := cmp.Diff(want, table.rows); diff != "" {
		t.Errorf("unexpected rows (-want +got):\n%s", diff)
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("NAME", "LICENSE")
	table.AddRow("midnight", "MIT")
	table.AddRow("after-dark", "GPL-3.0")

	want := "NAME        LICENSE\n" +
		"----------  -------\n" +
		"midnight    MIT\n" +
		"after-dark  GPL-3.0\n"
	if diff := cmp.Diff(want, table.Render()); diff != "" {
		t.Errorf("unexpected table (-want +got):\n%s", diff)
	}
}

func TestTableRenderWrapped(t *testing.T) {
	table := NewTable("NAME", "DESCRIPTION")
	table.SetColumnMaxWidth(1, 10)
	table.AddRow("midnight", "a dark theme for blogs")

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, rule and 3 wrapped lines, got %d:\n%s", len(lines), table.Render())
	}
	if !strings.HasPrefix(lines[2], "midnight") || !strings.HasSuffix(lines[2], "a dark") {
		t.Errorf("unexpected first row line %q", lines[2])
	}
	if strings.TrimSpace(lines[3]) != "theme for" {
		t.Errorf("unexpected second row line %q", lines[3])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "no limit", text: "hello world", width: 0, want: []string{"hello world"}},
		{name: "fits", text: "hello", width: 10, want: []string{"hello"}},
		{name: "word boundary", text: "hello big world", width: 9, want: []string{"hello big", "world"}},
		{name: "long word", text: "abcdefghij", width: 4, want: []string{"abcd", "efgh", "ij"}},
		{name: "only spaces", text: "            ", width: 4, want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, wrapText(tt.text, tt.width)); diff != "" {
				t.Errorf("unexpected lines (-want +got):\n%s", diff)
			}
		})
	}
}
