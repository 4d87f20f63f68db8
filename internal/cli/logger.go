package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"

	"github.com/jmylchreest/themegen/internal/config"
)

// newLogger builds the run logger. Colour is only used when out is a terminal.
func newLogger(cfg config.Log, out io.Writer) hclog.Logger {
	color := hclog.ColorOff
	if f, ok := out.(*os.File); ok && !cfg.JSON && term.IsTerminal(int(f.Fd())) {
		color = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "themegen",
		Output:     out,
		Level:      hclog.LevelFromString(cfg.Level),
		JSONFormat: cfg.JSON,
		Color:      color,
	})
}
