package config

import (
	"io/fs"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Loader layers a YAML file and command-line flags over Default()
type Loader struct {
	provider koanf.Provider
	source   string
}

// NewLoader creates a loader reading the YAML file at path.
// An empty path loads defaults and flags only.
func NewLoader(path string) *Loader {
	if path == "" {
		return &Loader{}
	}
	return &Loader{provider: file.Provider(path), source: path}
}

// NewFSLoader creates a loader reading name from fsys
func NewFSLoader(fsys fs.FS, name string) *Loader {
	return &Loader{provider: fsProvider{fsys: fsys, name: name}, source: name}
}

// Load reads the file, applies flags that were set on the command line, and
// validates the result. flags may be nil.
func (l *Loader) Load(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if l.provider != nil {
		if err := k.Load(l.provider, yaml.Parser()); err != nil {
			return nil, errLoad(l.source, err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagKey(flags)), nil); err != nil {
			return nil, errLoad("flags", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errLoad(l.source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
