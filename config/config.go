package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/lvpeel/gridgraph"
	"github.com/katalvlaran/lvpeel/peel"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config is the on-disk run configuration.
type Config struct {
	Threshold    int    `yaml:"threshold"`
	MaxPriority  int    `yaml:"max_priority"`
	Strategy     string `yaml:"strategy"`
	Connectivity string `yaml:"connectivity"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns threshold 3, derived bound, bucket strategy, Moore
// connectivity and INFO logging.
func Default() *Config {
	return &Config{
		Threshold:    peel.DefaultThreshold,
		MaxPriority:  -1,
		Strategy:     peel.StrategyBucket.String(),
		Connectivity: gridgraph.Conn8.String(),
		LogLevel:     "INFO",
	}
}

// Load reads and validates the YAML file at path on top of Default.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes YAML from r on top of Default and validates the result.
// An empty document yields Default.
func Parse(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r, yaml.Strict())
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("%w: threshold %d is negative", ErrInvalid, c.Threshold)
	}
	if c.MaxPriority < -1 {
		return fmt.Errorf("%w: max_priority %d (use -1 to derive it)", ErrInvalid, c.MaxPriority)
	}
	if _, err := peel.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy %q", ErrInvalid, c.Strategy)
	}
	if _, err := c.conn(); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// PeelOptions turns the config into engine options. Threshold is included so
// the result can be passed straight to peel.Run.
func (c *Config) PeelOptions() ([]peel.Option, error) {
	s, err := peel.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	opts := []peel.Option{
		peel.WithThreshold(c.Threshold),
		peel.WithStrategy(s),
	}
	if c.MaxPriority >= 0 {
		opts = append(opts, peel.WithMaxPriority(c.MaxPriority))
	}

	return opts, nil
}

// GridOptions returns parser options for the configured connectivity.
func (c *Config) GridOptions() (gridgraph.GridOptions, error) {
	opts := gridgraph.DefaultGridOptions()
	conn, err := c.conn()
	if err != nil {
		return opts, err
	}
	opts.Conn = conn

	return opts, nil
}

func (c *Config) conn() (gridgraph.Connectivity, error) {
	switch strings.ToLower(c.Connectivity) {
	case "", "moore", "8":
		return gridgraph.Conn8, nil
	case "orthogonal", "4":
		return gridgraph.Conn4, nil
	}

	return gridgraph.Conn8, fmt.Errorf("%w: connectivity %q", ErrInvalid, c.Connectivity)
}

// SlogLevel parses LogLevel. An empty value means INFO.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return lvl, nil
}
