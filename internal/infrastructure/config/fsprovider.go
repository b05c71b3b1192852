package config

import (
	"errors"
	"io/fs"
)

// fsProvider is a koanf.Provider reading a single file from an fs.FS
type fsProvider struct {
	fsys fs.FS
	name string
}

func (p fsProvider) ReadBytes() ([]byte, error) {
	return fs.ReadFile(p.fsys, p.name)
}

func (p fsProvider) Read() (map[string]any, error) {
	return nil, errors.New("fs provider does not support Read")
}
