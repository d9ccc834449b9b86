package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BurntSushi/toml"
)

var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration that reads "1.5s" style strings from TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config holds the tuning of a session and the host window.
type Config struct {
	// Width is the playfield width in pixels
	Width float64 `toml:"width"`

	// Height is the playfield height in pixels
	Height float64 `toml:"height"`

	// SpawnInterval is the time between target spawns
	SpawnInterval Duration `toml:"spawn_interval"`

	// TargetMinDuration and TargetMaxDuration bound how long a target takes
	// to cross the playfield
	TargetMinDuration Duration `toml:"target_min_duration"`
	TargetMaxDuration Duration `toml:"target_max_duration"`

	// BulletDuration is the flight time of a projectile
	BulletDuration Duration `toml:"bullet_duration"`

	// BulletRange is how far a projectile travels; must exceed the width
	BulletRange float64 `toml:"bullet_range"`

	// ScoreThreshold is the count a session must exceed to be won
	ScoreThreshold int `toml:"score_threshold"`

	// TransitionDuration is the length of the flip between scenes
	TransitionDuration Duration `toml:"transition_duration"`

	// ResultsDelay is how long the results scene stays before a new session
	ResultsDelay Duration `toml:"results_delay"`

	// Seed for the spawn generator, 0 seeds from the clock
	Seed int64 `toml:"seed"`

	// AssetDir holds sprite images and sounds
	AssetDir string `toml:"asset_dir"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `toml:"log_level"`

	// Mute disables sound effects
	Mute bool `toml:"mute"`
}

// DefaultConfig returns the stock game tuning
func DefaultConfig() Config {
	return Config{
		Width:              960,
		Height:             640,
		SpawnInterval:      Duration{time.Second},
		TargetMinDuration:  Duration{2 * time.Second},
		TargetMaxDuration:  Duration{4 * time.Second},
		BulletDuration:     Duration{2 * time.Second},
		BulletRange:        1000,
		ScoreThreshold:     30,
		TransitionDuration: Duration{500 * time.Millisecond},
		ResultsDelay:       Duration{3 * time.Second},
		AssetDir:           "assets",
		LogLevel:           "info",
	}
}

// LoadConfig overlays the TOML file at path on DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: playfield %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.SpawnInterval.Duration <= 0:
		return fmt.Errorf("%w: spawn_interval must be positive", ErrInvalidConfig)
	case c.TargetMinDuration.Duration <= 0 || c.TargetMaxDuration.Duration < c.TargetMinDuration.Duration:
		return fmt.Errorf("%w: target durations %v..%v", ErrInvalidConfig, c.TargetMinDuration, c.TargetMaxDuration)
	case c.BulletDuration.Duration <= 0:
		return fmt.Errorf("%w: bullet_duration must be positive", ErrInvalidConfig)
	case c.BulletRange <= c.Width:
		return fmt.Errorf("%w: bullet_range %v does not exceed width %v", ErrInvalidConfig, c.BulletRange, c.Width)
	case c.ScoreThreshold < 0:
		return fmt.Errorf("%w: score_threshold %d", ErrInvalidConfig, c.ScoreThreshold)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return l, nil
}

// Size is the playfield size.
func (c Config) Size() Size { return Size{W: c.Width, H: c.Height} }
