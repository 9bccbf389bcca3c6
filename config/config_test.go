package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.TickRateHz != parameter.TickRateHz || cfg.MapGenHalfWidth != parameter.MapGenHalfWidth {
		t.Errorf("Defaults not applied: %+v", cfg)
	}
	if cfg.MaxEventsPerDrain != 1<<20 {
		t.Errorf("MaxEventsPerDrain = %d", cfg.MaxEventsPerDrain)
	}
	if cfg.TickInterval() != time.Second/60 {
		t.Errorf("TickInterval = %v", cfg.TickInterval())
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survivor.yaml")
	data := `
seed: 42
map_gen_half_width: 8
trace_events: [tick, AbilityHit]
log:
  enabled: true
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Seed != 42 || cfg.MapGenHalfWidth != 8 {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if cfg.TickRateHz != parameter.TickRateHz {
		t.Error("Unset field lost its default")
	}
	if !cfg.Log.Enabled || cfg.Log.Level != "debug" || cfg.Log.Format != "json" || cfg.Log.File != "survivor.log" {
		t.Errorf("Log config = %+v", cfg.Log)
	}
	if !cfg.Audio.Enabled {
		t.Error("Audio default lost")
	}

	types, err := cfg.TraceEventTypes()
	if err != nil {
		t.Fatal(err)
	}
	if len(types) != 2 || types[0] != event.EventTick || types[1] != event.EventAbilityHit {
		t.Errorf("TraceEventTypes = %v", types)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"zero tick rate", "tick_rate_hz: 0", "tick_rate_hz"},
		{"negative half width", "map_gen_half_width: -1", "map_gen_half_width"},
		{"zero drain limit", "max_events_per_drain: 0", "max_events_per_drain"},
		{"bad level", "log: {level: loud}", "log.level"},
		{"bad format", "log: {format: xml}", "log.format"},
		{"unknown event", "trace_events: [explode]", "explode"},
		{"unknown key", "tick_rate: 30", "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Errorf("Expected wrapped read error, got %v", err)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	if cfg.Seed != parameter.DefaultSeed {
		t.Errorf("Seed = %d", cfg.Seed)
	}
}
