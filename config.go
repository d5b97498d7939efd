package touchui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrInvalidConfig is returned for configuration values out of range.
var ErrInvalidConfig = errors.New("touchui: invalid config")

// Config is the JSON configuration shared by the programs in examples/.
// Absent fields keep their defaults; zero gesture timings also mean default.
type Config struct {
	Width         int         `json:"width"`
	Height        int         `json:"height"`
	TouchPadding  int         `json:"touch_padding"`
	ScreenshotDir string      `json:"screenshot_dir"`
	Debug         bool        `json:"debug"`
	Gesture       GestureJSON `json:"gesture"`
}

// GestureJSON is the serialised form of GestureConfig, in milliseconds.
type GestureJSON struct {
	PollIntervalMS int  `json:"poll_interval_ms"`
	MediumTapMS    int  `json:"medium_tap_ms"`
	LongTapMS      int  `json:"long_tap_ms"`
	MoveThreshold  int  `json:"move_threshold"`
	SymmetricSwipe bool `json:"symmetric_swipe"`
}

// DefaultConfig returns a 480x480 panel with stock padding and timings.
func DefaultConfig() Config {
	g := DefaultGestureConfig()
	return Config{
		Width:         480,
		Height:        480,
		TouchPadding:  defaultTouchPadding,
		ScreenshotDir: "screenshots",
		Gesture: GestureJSON{
			PollIntervalMS: int(g.PollInterval / time.Millisecond),
			MediumTapMS:    int(g.MediumTap / time.Millisecond),
			LongTapMS:      int(g.LongTap / time.Millisecond),
			MoveThreshold:  g.MoveThreshold,
		},
	}
}

// ParseConfig decodes data over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a JSON config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

func (c Config) validate() error {
	checks := []struct {
		name string
		v    int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"touch_padding", c.TouchPadding},
		{"gesture.poll_interval_ms", c.Gesture.PollIntervalMS},
		{"gesture.medium_tap_ms", c.Gesture.MediumTapMS},
		{"gesture.long_tap_ms", c.Gesture.LongTapMS},
		{"gesture.move_threshold", c.Gesture.MoveThreshold},
	}
	for _, ch := range checks {
		if ch.v < 0 {
			return fmt.Errorf("%w: %s = %d", ErrInvalidConfig, ch.name, ch.v)
		}
	}
	return nil
}

// GestureConfig converts the gesture section. Zero values become defaults.
func (c Config) GestureConfig() GestureConfig {
	return GestureConfig{
		PollInterval:   time.Duration(c.Gesture.PollIntervalMS) * time.Millisecond,
		MediumTap:      time.Duration(c.Gesture.MediumTapMS) * time.Millisecond,
		LongTap:        time.Duration(c.Gesture.LongTapMS) * time.Millisecond,
		MoveThreshold:  c.Gesture.MoveThreshold,
		SymmetricSwipe: c.Gesture.SymmetricSwipe,
	}.withDefaults()
}

// Configure applies the manager-level settings in cfg.
func (m *Manager) Configure(cfg Config) {
	m.TouchPadding = cfg.TouchPadding
	if cfg.ScreenshotDir != "" {
		m.ScreenshotDir = cfg.ScreenshotDir
	}
	m.SetDebugMode(cfg.Debug)
}
