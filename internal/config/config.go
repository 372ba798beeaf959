// Package config loads the optional YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no config path is
// given on the command line.
const DefaultFile = ".c2filt.yaml"

// ErrInvalid indicates a config file that cannot be parsed or has bad values.
var ErrInvalid = errors.New("config: invalid")

// Config selects the decode tool. The match pattern and the output path are
// fixed and have no configuration keys.
type Config struct {
	Tool  string   `yaml:"tool"`
	Args  []string `yaml:"args"`
	Debug bool     `yaml:"debug"`
}

// Load reads the config file at path. Unknown keys are rejected.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return parse(path, b)
}

// LoadDefault reads DefaultFile from dir if it exists and returns the zero
// Config otherwise.
func LoadDefault(dir string) (Config, error) {
	path := filepath.Join(dir, DefaultFile)
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

func parse(path string, b []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}

	cfg.Tool = strings.TrimSpace(cfg.Tool)
	for i, a := range cfg.Args {
		if a == "" {
			return Config{}, fmt.Errorf("%w: %s: args[%d] is empty", ErrInvalid, path, i)
		}
	}
	return cfg, nil
}
