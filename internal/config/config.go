package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultScheme = "checkered"
	DefaultOutDir = "snapshots"
)

type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Scheme   string `yaml:"scheme"`
	OutDir   string `yaml:"out_dir"`
	MaxIters int    `yaml:"max_iters"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Scheme: DefaultScheme,
		OutDir: DefaultOutDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", c.Height)
	}
	if c.MaxIters < 0 {
		return fmt.Errorf("max_iters must be non-negative, got %d", c.MaxIters)
	}
	return nil
}
