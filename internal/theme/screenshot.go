package theme

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"

	_ "golang.org/x/image/webp" // Register WebP format
)

// ScreenshotFile is the preview image every theme ships.
const ScreenshotFile = "screenshot.png"

// ScreenshotInfo describes a decoded screenshot header.
type ScreenshotInfo struct {
	Format string
	Width  int
	Height int
}

// InspectScreenshot decodes the image header of the file at path.
// Supported formats: PNG, JPEG, GIF, WebP.
func InspectScreenshot(path string) (ScreenshotInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ScreenshotInfo{}, fmt.Errorf("failed to open screenshot: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return ScreenshotInfo{}, fmt.Errorf("unsupported or invalid image format: %w", err)
	}
	return ScreenshotInfo{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
