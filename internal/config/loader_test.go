package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// isolate points the user and local search locations at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg HordeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("horde"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultHordeConfig() {
		t.Errorf("embedded defaults drifted from DefaultHordeConfig:\n%+v\n%+v", cfg, DefaultHordeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadHordeFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadHorde("")
	if err != nil {
		t.Fatalf("LoadHorde: %v", err)
	}
	if cfg != DefaultHordeConfig() {
		t.Error("expected embedded defaults")
	}
}

func TestLoadHordeSearchOrder(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", "horde.yaml"), "player:\n  speed: 150\n")

	cfg, err := LoadHorde("")
	if err != nil {
		t.Fatalf("LoadHorde: %v", err)
	}
	if cfg.Player.Speed != 150 {
		t.Errorf("local config not used, speed = %v", cfg.Player.Speed)
	}
	if cfg.Enemy.Speed != 100 {
		t.Errorf("unset keys should keep defaults, enemy speed = %v", cfg.Enemy.Speed)
	}

	writeFile(t, filepath.Join(home, ".horde", "configs", "horde.yaml"), "player:\n  speed: 250\n")
	cfg, err = LoadHorde("")
	if err != nil {
		t.Fatalf("LoadHorde: %v", err)
	}
	if cfg.Player.Speed != 250 {
		t.Errorf("user config should win over local, speed = %v", cfg.Player.Speed)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "player:\n  speed: 90\n")
	cfg, err = LoadHorde(custom)
	if err != nil {
		t.Fatalf("LoadHorde: %v", err)
	}
	if cfg.Player.Speed != 90 {
		t.Errorf("custom path should win, speed = %v", cfg.Player.Speed)
	}
}

func TestLoadHordeSkipsUnparsableOptionalFile(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", "horde.yaml"), "player: [not a map\n")

	cfg, err := LoadHorde("")
	if err != nil {
		t.Fatalf("LoadHorde: %v", err)
	}
	if cfg != DefaultHordeConfig() {
		t.Error("unparsable local file should fall through to defaults")
	}
}

func TestLoadHordeCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadHorde(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing custom file: got %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "world: [\n")
	if _, err := LoadHorde(bad); err == nil {
		t.Error("expected a parse error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	writeFile(t, invalid, "spawner:\n  placement: everywhere\n")
	if _, err := LoadHorde(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HordeConfig)
		valid  bool
	}{
		{"defaults", func(*HordeConfig) {}, true},
		{"edges placement", func(c *HordeConfig) { c.Spawner.Placement = PlacementEdges }, true},
		{"escalation disabled", func(c *HordeConfig) { c.Spawner.EscalateEvery = 0 }, true},
		{"zero contact damage", func(c *HordeConfig) { c.Enemy.ContactDamage = 0 }, true},
		{"zero world width", func(c *HordeConfig) { c.World.Width = 0 }, false},
		{"negative player speed", func(c *HordeConfig) { c.Player.Speed = -1 }, false},
		{"empty enemy pool", func(c *HordeConfig) { c.Enemy.Pool = 0 }, false},
		{"empty projectile pool", func(c *HordeConfig) { c.Projectile.Pool = 0 }, false},
		{"zero melee size", func(c *HordeConfig) { c.Melee.Size = 0 }, false},
		{"decay above one", func(c *HordeConfig) { c.Spawner.IntervalDecay = 1.5 }, false},
		{"zero interval", func(c *HordeConfig) { c.Spawner.IntervalMs = 0 }, false},
		{"floor equals interval", func(c *HordeConfig) { c.Spawner.MinIntervalMs = c.Spawner.IntervalMs }, true},
		{"floor above interval", func(c *HordeConfig) { c.Spawner.IntervalMs, c.Spawner.MinIntervalMs = 100, 250 }, false},
		{"unknown placement", func(c *HordeConfig) { c.Spawner.Placement = "corners" }, false},
		{"zero hold ticks", func(c *HordeConfig) { c.Input.HoldTicks = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHordeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	for _, p := range Presets {
		t.Run(string(p), func(t *testing.T) {
			got, err := ParsePreset(string(p))
			if err != nil || got != p {
				t.Fatalf("ParsePreset(%q) = %q, %v", p, got, err)
			}
			cfg := DefaultHordeConfig()
			ApplyHordePreset(&cfg, p)
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produces invalid config: %v", err)
			}
			if IsFixedPreset(p) != (cfg.Spawner.EscalateEvery == 0) {
				t.Errorf("escalate_every = %d for preset %s", cfg.Spawner.EscalateEvery, p)
			}
		})
	}

	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty preset should mean normal, got %q %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown preset: got %v", err)
	}

	normal := DefaultHordeConfig()
	ApplyHordePreset(&normal, DifficultyNormal)
	if normal != DefaultHordeConfig() {
		t.Error("normal preset should not change the config")
	}
	easy := DefaultHordeConfig()
	ApplyHordePreset(&easy, DifficultyEasy)
	hard := DefaultHordeConfig()
	ApplyHordePreset(&hard, DifficultyHard)
	if !(easy.Spawner.IntervalMs > normal.Spawner.IntervalMs && normal.Spawner.IntervalMs > hard.Spawner.IntervalMs) {
		t.Error("presets should order spawn intervals easy > normal > hard")
	}
}

func TestPresetKeepsFloorBelowInterval(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyHard} {
		t.Run(string(p), func(t *testing.T) {
			cfg := DefaultHordeConfig()
			cfg.Spawner.IntervalMs = 3000
			cfg.Spawner.MinIntervalMs = 2000
			ApplyHordePreset(&cfg, p)

			if cfg.Spawner.MinIntervalMs > cfg.Spawner.IntervalMs {
				t.Errorf("floor %dms above interval %dms", cfg.Spawner.MinIntervalMs, cfg.Spawner.IntervalMs)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produces invalid config: %v", err)
			}
		})
	}

	cfg := DefaultHordeConfig()
	ApplyHordePreset(&cfg, DifficultyHard)
	if cfg.Spawner.MinIntervalMs != DefaultHordeConfig().Spawner.MinIntervalMs {
		t.Errorf("a floor already below the interval should be kept, got %dms", cfg.Spawner.MinIntervalMs)
	}
}

func TestPresetLabel(t *testing.T) {
	if got := DifficultyFixed.Label(); got != "fixed (no escalation)" {
		t.Errorf("Label() = %q", got)
	}
	if got := DifficultyHard.Label(); got != "hard" {
		t.Errorf("Label() = %q", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultHordeConfig()
	cfg.Spawner.Placement = PlacementEdges

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := decodeHorde(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip changed config:\n%s", data)
	}
}
