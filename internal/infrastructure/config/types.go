// Package config loads runtime settings from YAML and command-line flags.
package config

// Config is the root config for gamebox.yaml
type Config struct {
	Window  WindowConfig  `koanf:"window"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
	Replay  ReplayConfig  `koanf:"replay"`
}

// WindowConfig describes the host window and tick rate
type WindowConfig struct {
	Width     int     `koanf:"width"`  // logical screen width (pixels)
	Height    int     `koanf:"height"` // logical screen height (pixels)
	Scale     float64 `koanf:"scale"`  // window size multiplier
	TPS       int     `koanf:"tps"`
	Title     string  `koanf:"title"`
	Resizable bool    `koanf:"resizable"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// MetricsConfig configures the metrics endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `koanf:"addr"`
}

type ReplayConfig struct {
	Record bool   `koanf:"record"`
	Dir    string `koanf:"dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  320,
			Height: 240,
			Scale:  2,
			TPS:    60,
			Title:  "gamebox",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Replay: ReplayConfig{
			Dir: "replays",
		},
	}
}
