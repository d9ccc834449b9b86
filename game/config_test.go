package game

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shooter.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_Overlay(t *testing.T) {
	path := writeConfig(t, `
width = 800.0
spawn_interval = "750ms"
score_threshold = 10
log_level = "debug"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig = %v", err)
	}
	if cfg.Width != 800 {
		t.Errorf("Width = %v, want 800", cfg.Width)
	}
	if cfg.Height != 640 {
		t.Errorf("Height = %v, want default 640", cfg.Height)
	}
	if cfg.SpawnInterval.Duration != 750*time.Millisecond {
		t.Errorf("SpawnInterval = %v, want 750ms", cfg.SpawnInterval)
	}
	if cfg.ScoreThreshold != 10 {
		t.Errorf("ScoreThreshold = %d, want 10", cfg.ScoreThreshold)
	}
	if l, _ := cfg.Level(); l != slog.LevelDebug {
		t.Errorf("Level = %v, want debug", l)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative width", "width = -1.0"},
		{"range inside playfield", "bullet_range = 500.0"},
		{"inverted durations", `target_min_duration = "5s"`},
		{"bad level", `log_level = "loud"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("LoadConfig = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfig_BadDuration(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `spawn_interval = "soon"`))
	if err == nil {
		t.Error("LoadConfig accepted an unparseable duration")
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("LoadConfig accepted a missing file")
	}
}
