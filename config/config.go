package config

import (
	"bytes"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
)

// Config is the host configuration; every field defaults to the reference tunables
type Config struct {
	Seed              uint64   `yaml:"seed"`
	TickRateHz        int      `yaml:"tick_rate_hz"`
	MapGenHalfWidth   int      `yaml:"map_gen_half_width"`
	MaxEventsPerDrain int      `yaml:"max_events_per_drain"`
	TraceEvents       []string `yaml:"trace_events"` // Event names logged at trace level on dispatch

	Log   LogConfig   `yaml:"log"`
	Audio AudioConfig `yaml:"audio"`
}

// LogConfig controls the file logger
type LogConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Level     string `yaml:"level"`
	Format    string `yaml:"format"` // text or json
	Dir       string `yaml:"dir"`
	File      string `yaml:"file"`
	MaxSizeMB int    `yaml:"max_size_mb"` // Rotate on startup above this size
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the reference configuration
func Default() Config {
	return Config{
		Seed:              parameter.DefaultSeed,
		TickRateHz:        parameter.TickRateHz,
		MapGenHalfWidth:   parameter.MapGenHalfWidth,
		MaxEventsPerDrain: parameter.MaxEventsPerDrain,
		Log: LogConfig{
			Enabled:   false,
			Level:     "info",
			Format:    "text",
			Dir:       "logs",
			File:      "survivor.log",
			MaxSizeMB: 10,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// Load reads a YAML file over the defaults; an empty path returns the defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
// Unknown keys are rejected
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	if c.TickRateHz <= 0 {
		return errors.Errorf("tick_rate_hz must be positive, got %d", c.TickRateHz)
	}
	if c.MapGenHalfWidth <= 0 {
		return errors.Errorf("map_gen_half_width must be positive, got %d", c.MapGenHalfWidth)
	}
	if c.MaxEventsPerDrain <= 0 {
		return errors.Errorf("max_events_per_drain must be positive, got %d", c.MaxEventsPerDrain)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if _, err := c.TraceEventTypes(); err != nil {
		return err
	}
	return nil
}

// TraceEventTypes resolves TraceEvents names, case-insensitive
func (c Config) TraceEventTypes() ([]event.EventType, error) {
	types := make([]event.EventType, 0, len(c.TraceEvents))
	for _, name := range c.TraceEvents {
		et, ok := event.GetEventType(name)
		if !ok {
			return nil, errors.Errorf("trace_events: unknown event %q", name)
		}
		types = append(types, et)
	}
	return types, nil
}

// TickInterval returns the fixed simulation step
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRateHz)
}
