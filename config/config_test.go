package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() = %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.MaxDistanceThreshold != nil {
		t.Errorf("default threshold = %d, expected unset", *cfg.MaxDistanceThreshold)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "building.yaml", `
floors: 12
elevators: 3
max_distance_threshold: 4
door_open_duration: 5s
settle_duration: 500ms
time_scale: 0.5
log_level: debug
start_floors: [0, 6]
out_of_service: [2]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if cfg.Floors != 12 || cfg.Elevators != 3 {
		t.Errorf("floors/elevators = %d/%d, expected 12/3", cfg.Floors, cfg.Elevators)
	}
	if cfg.MaxDistanceThreshold == nil || *cfg.MaxDistanceThreshold != 4 {
		t.Errorf("threshold = %v, expected 4", cfg.MaxDistanceThreshold)
	}
	if cfg.DoorOpenDuration != 5*time.Second || cfg.SettleDuration != 500*time.Millisecond {
		t.Errorf("durations = %v/%v", cfg.DoorOpenDuration, cfg.SettleDuration)
	}
	if cfg.StartFloor(1) != 6 || cfg.StartFloor(2) != 0 {
		t.Errorf("start floors = %v", cfg.StartFloors)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	building := cfg.Building()
	if building.NumFloors != 12 || *building.MaxDistanceThreshold != 4 {
		t.Errorf("Building() = %+v", building)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load of missing file = nil, expected error")
	}

	path := writeFile(t, "bad.yaml", "floors: [1, 2\n")
	if _, err := Load(path); err == nil {
		t.Errorf("Load of broken yaml = nil, expected error")
	}
}

func TestApplyEnv(t *testing.T) {
	path := writeFile(t, ".env", `
ELEVSIM_FLOORS=20
ELEVSIM_ELEVATORS=4
ELEVSIM_MAX_DISTANCE=2
ELEVSIM_TIME_SCALE=0.25
ELEVSIM_LOG_LEVEL=warn
`)

	cfg := Default()
	if err := cfg.ApplyEnv(path); err != nil {
		t.Fatalf("ApplyEnv() = %v", err)
	}

	if cfg.Floors != 20 || cfg.Elevators != 4 || *cfg.MaxDistanceThreshold != 2 {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.TimeScale != 0.25 || cfg.LogLevel != "warn" {
		t.Errorf("time scale %v log level %q", cfg.TimeScale, cfg.LogLevel)
	}
}

func TestApplyEnvMissingFile(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("ApplyEnv of missing file = %v, expected nil", err)
	}
	if cfg.Floors != Default().Floors {
		t.Errorf("missing env file changed config")
	}
}

func TestApplyEnvBadNumber(t *testing.T) {
	path := writeFile(t, ".env", "ELEVSIM_FLOORS=many\n")

	cfg := Default()
	if err := cfg.ApplyEnv(path); err == nil {
		t.Errorf("ApplyEnv with bad number = nil, expected error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"no floors", func(c *Config) { c.Floors = 0 }},
		{"no elevators", func(c *Config) { c.Elevators = 0 }},
		{"negative duration", func(c *Config) { c.SettleDuration = -time.Second }},
		{"negative time scale", func(c *Config) { c.TimeScale = -1 }},
		{"too many start floors", func(c *Config) { c.StartFloors = []int{0, 1, 2} }},
		{"start floor out of range", func(c *Config) { c.StartFloors = []int{10} }},
		{"unknown out of service elevator", func(c *Config) { c.OutOfService = []int{2} }},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.modify(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, expected error", tt.name)
		}
	}
}
