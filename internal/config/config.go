package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/re-cinq/gig/internal/fileutil"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Output    string   `yaml:"output" toml:"output"`
	Append    bool     `yaml:"append" toml:"append"`
	Templates []string `yaml:"templates" toml:"templates"`
	Extra     []string `yaml:"extra" toml:"extra"`
}

// Default returns the configuration used when no config file is found.
func Default() *Config {
	return &Config{Output: fileutil.DefaultOutput}
}

// Load reads a config file. Files ending in .toml are parsed as TOML,
// everything else as YAML. Keys that are not part of the format are rejected.
// Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if filepath.Ext(path) == ".toml" {
		err = decodeTOML(data, cfg)
	} else {
		err = decodeYAML(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}
