package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/benoitkugler/svgtree/svgtree"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config gathers the settings shared by the commands.
// It is read from an optional YAML file, then overridden by flags.
type Config struct {
	ErrorMode string `mapstructure:"error_mode"`
	DOM       string `mapstructure:"dom"` // "xml" or "goxml"
	LogLevel  string `mapstructure:"log_level"`

	Dump   DumpConfig   `mapstructure:"dump"`
	Raster RasterConfig `mapstructure:"raster"`
}

type DumpConfig struct {
	Format string `mapstructure:"format"` // "yaml" or "json"
}

// RasterConfig sets the output size. Zero values default
// to the intrinsic size of the image.
type RasterConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// DefaultConfig is used when no config file is given.
func DefaultConfig() Config {
	return Config{
		ErrorMode: svgtree.IgnoreErrorMode.String(),
		DOM:       "xml",
		LogLevel:  "info",
		Dump:      DumpConfig{Format: "yaml"},
	}
}

// LoadConfig reads the YAML file at path, on top of DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return cfg, err
	}
	if err := dec.Decode(raw); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := svgtree.ParseErrorMode(c.ErrorMode); err != nil {
		return err
	}
	if c.DOM != "xml" && c.DOM != "goxml" {
		return fmt.Errorf("unknown dom loader %q", c.DOM)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Dump.Format != "yaml" && c.Dump.Format != "json" {
		return fmt.Errorf("unknown dump format %q", c.Dump.Format)
	}
	if c.Raster.Width < 0 || c.Raster.Height < 0 {
		return fmt.Errorf("negative raster size %dx%d", c.Raster.Width, c.Raster.Height)
	}
	return nil
}

// Level returns the parsed LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

// Options returns the parser options, logging to logger.
func (c Config) Options(logger *slog.Logger) svgtree.Options {
	mode, _ := svgtree.ParseErrorMode(c.ErrorMode) // checked by Validate
	return svgtree.Options{ErrorMode: mode, Logger: logger}
}

// overrideFromFlags copies the flags explicitly set on cmd into c.
func (c *Config) overrideFromFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	strs := map[string]*string{
		"error-mode": &c.ErrorMode,
		"dom":        &c.DOM,
		"log-level":  &c.LogLevel,
		"format":     &c.Dump.Format,
	}
	for name, dst := range strs {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	ints := map[string]*int{
		"width":  &c.Raster.Width,
		"height": &c.Raster.Height,
	}
	for name, dst := range ints {
		if flags.Changed(name) {
			*dst, _ = flags.GetInt(name)
		}
	}
}
