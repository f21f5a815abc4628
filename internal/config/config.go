package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Defaults applied when the file or a field is missing.
const (
	DefaultLogLevel       = "info"
	DefaultCacheSize      = 4096
	DefaultMovesDirectory = "data/moves"
)

// Config is the module configuration, decoded from an HCL file.
type Config struct {
	Log   *LogConfig   `hcl:"log,block"`
	Cache *CacheConfig `hcl:"cache,block"`
	Moves *MovesConfig `hcl:"moves,block"`
}

type LogConfig struct {
	Level string `hcl:"level,optional"`
}

// CacheConfig sizes the classification memo. A negative size disables it.
type CacheConfig struct {
	Size int `hcl:"size,optional"`
}

// MovesConfig controls where enumerated move lists are written. An empty category list
// means every category.
type MovesConfig struct {
	Directory  string   `hcl:"directory,optional"`
	Categories []string `hcl:"categories,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the HCL configuration at path. A missing file yields Default().
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes configuration from in-memory HCL source.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var c Config
	if diags := gohcl.DecodeBody(body, nil, &c); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Cache == nil {
		c.Cache = &CacheConfig{}
	}
	if c.Moves == nil {
		c.Moves = &MovesConfig{}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Cache.Size == 0 {
		c.Cache.Size = DefaultCacheSize
	}
	if c.Moves.Directory == "" {
		c.Moves.Directory = DefaultMovesDirectory
	}
}
