package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollector(t *testing.T) {
	var c Collector
	if c.Len() != 0 {
		t.Fatalf("expected empty collector, got %d", c.Len())
	}

	c.Add("first")
	c.AddError(errors.New("Theme 'beta' is missing screenshot.png."))

	other := NewCollector()
	other.Add("third")
	c.Merge(other)
	c.Merge(nil)

	want := []string{"first", "Theme 'beta' is missing screenshot.png.", "third"}
	if diff := cmp.Diff(want, c.Errors()); diff != "" {
		t.Errorf("unexpected errors (-want +got):\n%s", diff)
	}

	// Errors returns a copy.
	got := c.Errors()
	got[0] = "changed"
	if c.Errors()[0] != "first" {
		t.Error("Errors() exposed internal storage")
	}
}

func TestSummaryWrite(t *testing.T) {
	t.Run("without errors", func(t *testing.T) {
		var buf bytes.Buffer
		if err := (Summary{Processed: 3}).Write(&buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		if strings.Contains(out, "ERROR SUMMARY") {
			t.Errorf("did not expect error banner, got:\n%s", out)
		}
		if !strings.Contains(out, "Themes successfully processed: 3\n") {
			t.Errorf("missing processed count, got:\n%s", out)
		}
		if !strings.Contains(out, "Themes with errors: 0\n") {
			t.Errorf("missing error count, got:\n%s", out)
		}
	})

	t.Run("with errors", func(t *testing.T) {
		var buf bytes.Buffer
		s := Summary{
			Processed: 1,
			Errors:    []string{"Theme 'beta' is missing screenshot.png."},
		}
		if err := s.Write(&buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "\n\n" + strings.Repeat("=", 60) + "\n" +
			"ERROR SUMMARY:\n" +
			strings.Repeat("-", 60) + "\n" +
			"Theme 'beta' is missing screenshot.png.\n" +
			strings.Repeat("-", 60) + "\n" +
			strings.Repeat("=", 60) + "\n\n" +
			"\nThemes successfully processed: 1\n" +
			"Themes with errors: 1\n"
		if diff := cmp.Diff(want, buf.String()); diff != "" {
			t.Errorf("unexpected summary (-want +got):\n%s", diff)
		}
	})
}
