// Package testutil provides shared test fixtures for theme directories.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// MidnightTOML is complete metadata without any optional key.
const MidnightTOML = `name = "Midnight"
description = "dark theme"
min_version = "0.1"
license = "MIT"

[author]
name = "Alice"
`

// Fixture describes the files of a theme directory. Empty names omit the
// file; nil Screenshot writes a valid PNG.
type Fixture struct {
	Metadata   string
	MetaName   string
	Readme     string
	ReadmeName string
	Screenshot []byte
	ShotName   string
}

// DefaultFixture returns a complete, valid theme.
func DefaultFixture() Fixture {
	return Fixture{
		Metadata:   MidnightTOML,
		MetaName:   "theme.toml",
		Readme:     "# Midnight\n\nA dark theme.\n",
		ReadmeName: "README.md",
		ShotName:   "screenshot.png",
	}
}

// WriteTheme creates dir/name populated from f and returns its path.
func WriteTheme(t *testing.T, dir, name string, f Fixture) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create theme dir: %v", err)
	}

	write := func(file string, content []byte) {
		if file == "" {
			return
		}
		if err := os.WriteFile(filepath.Join(path, file), content, 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", file, err)
		}
	}

	write(f.MetaName, []byte(f.Metadata))
	write(f.ReadmeName, []byte(f.Readme))
	shot := f.Screenshot
	if shot == nil {
		shot = PNG(t)
	}
	write(f.ShotName, shot)

	return path
}

// PNG returns the bytes of a valid 2x1 PNG image.
func PNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff})
	img.Set(1, 0, color.RGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}
