package config

import (
	"github.com/knadh/koanf/providers/posflag"
	"github.com/spf13/pflag"
)

// flagKeys maps command-line flag names to config keys
var flagKeys = map[string]string{
	"width":        "window.width",
	"height":       "window.height",
	"scale":        "window.scale",
	"tps":          "window.tps",
	"title":        "window.title",
	"resizable":    "window.resizable",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"metrics-addr": "metrics.addr",
	"record":       "replay.record",
	"replay-dir":   "replay.dir",
}

// BindFlags declares the override flags on fs. Flag defaults match Default().
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int("width", d.Window.Width, "logical screen width")
	fs.Int("height", d.Window.Height, "logical screen height")
	fs.Float64("scale", d.Window.Scale, "window scale factor")
	fs.Int("tps", d.Window.TPS, "ticks per second")
	fs.String("title", d.Window.Title, "window title")
	fs.Bool("resizable", d.Window.Resizable, "allow resizing the window")
	fs.String("log-level", d.Log.Level, "log level (debug, info, warn, error)")
	fs.String("log-format", d.Log.Format, "log format (text, json)")
	fs.String("metrics-addr", d.Metrics.Addr, "serve metrics on this address (empty disables)")
	fs.Bool("record", d.Replay.Record, "record input to a replay file")
	fs.String("replay-dir", d.Replay.Dir, "directory for recorded replays")
}

// flagKey translates a flag into its config key. Unknown flags are skipped.
func flagKey(fs *pflag.FlagSet) func(*pflag.Flag) (string, any) {
	return func(f *pflag.Flag) (string, any) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}
