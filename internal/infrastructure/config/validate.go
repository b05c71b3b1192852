package config

import (
	"slices"

	"github.com/younwookim/gamebox/internal/infrastructure/logging"
)

var logFormats = []string{"text", "json"}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	w := c.Window
	switch {
	case w.Width <= 0:
		return errInvalid("window.width", w.Width, "must be positive")
	case w.Height <= 0:
		return errInvalid("window.height", w.Height, "must be positive")
	case w.Scale <= 0:
		return errInvalid("window.scale", w.Scale, "must be positive")
	case w.TPS <= 0:
		return errInvalid("window.tps", w.TPS, "must be positive")
	}

	// the logger is built from the same names, so accept exactly what it parses
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errInvalid("log.level", c.Log.Level, "must be one of debug, info, warn, warning, error")
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return errInvalid("log.format", c.Log.Format, "must be text or json")
	}
	if c.Replay.Record && c.Replay.Dir == "" {
		return errInvalid("replay.dir", c.Replay.Dir, "required when recording")
	}
	return nil
}
