package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BurntSushi/toml"

	"PathBoard/internal/state"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Placeholder is drawn while the path is empty.
const Placeholder = "M 188 65 L 155 261 L 208 262 L 224 175 L 276 172 L 256 261 L 313 259 L 376 38 L 309 49 L 283 141 L 230 144 L 246 56 Z M 406 120 L 351 258 L 429 257 L 440 119 Z M 412 103 L 421 76 L 449 77 L 447 100 Z M 439 138 L 495 111 Z M 505 75 L 494 112 Z M 496 64 L 504 76 Z M 511 60 L 505 76 Z M 524 67 L 506 76 L 506 76"

// Config holds every user-tunable setting. Field names match the keys of
// the TOML file.
type Config struct {
	FPS            int     `toml:"fps"`
	StrokeWidth    float64 `toml:"stroke_width"`
	SelectDistance float64 `toml:"select_distance"`
	// HandleSnapDistance is the radius around an endpoint inside which a
	// dragged handle collapses back onto it.
	HandleSnapDistance float64 `toml:"handle_snap_distance"`

	GridSize float64 `toml:"grid_size"`
	GridSnap bool    `toml:"grid_snap"`

	ZoomStep     float64       `toml:"zoom_step"`
	ZoomCooldown time.Duration `toml:"zoom_cooldown"`
	FitFraction  float64       `toml:"fit_fraction"`

	Decimals    int    `toml:"decimals"`
	DefaultKind string `toml:"default_kind"`
	ShowMarkers bool   `toml:"show_markers"`
	Fill        bool   `toml:"fill"`

	HistoryLimit int    `toml:"history_limit"`
	Placeholder  string `toml:"placeholder"`

	Width       float32 `toml:"width"`
	Height      float32 `toml:"height"`
	PreviewPort int     `toml:"preview_port"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		FPS:                24,
		StrokeWidth:        3,
		SelectDistance:     10,
		HandleSnapDistance: 4,
		GridSize:           10,
		ZoomStep:           1.1,
		ZoomCooldown:       300 * time.Millisecond,
		FitFraction:        0.8,
		Decimals:           0,
		DefaultKind:        "Q",
		ShowMarkers:        true,
		Fill:               true,
		HistoryLimit:       state.DefaultHistoryLimit,
		Placeholder:        Placeholder,
		Width:              1024,
		Height:             768,
		PreviewPort:        8888,
	}
}

// Load reads a TOML file on top of the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, finish(cfg, md)
}

// Parse is Load for TOML text already in memory.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, finish(cfg, md)
}

func finish(cfg Config, md toml.MetaData) error {
	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key", "component", "config", "key", key.String())
	}
	return cfg.Validate()
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid))
	}
	if c.FPS <= 0 || c.FPS > 240 {
		bad("fps %d out of range 1..240", c.FPS)
	}
	if c.StrokeWidth <= 0 {
		bad("stroke_width %g must be positive", c.StrokeWidth)
	}
	if c.SelectDistance <= 0 {
		bad("select_distance %g must be positive", c.SelectDistance)
	}
	if c.HandleSnapDistance < 0 {
		bad("handle_snap_distance %g is negative", c.HandleSnapDistance)
	}
	if c.GridSize <= 0 {
		bad("grid_size %g must be positive", c.GridSize)
	}
	if c.ZoomStep <= 1 {
		bad("zoom_step %g must be greater than 1", c.ZoomStep)
	}
	if c.ZoomCooldown < 0 {
		bad("zoom_cooldown %s is negative", c.ZoomCooldown)
	}
	if c.FitFraction <= 0 || c.FitFraction > 1 {
		bad("fit_fraction %g out of range (0, 1]", c.FitFraction)
	}
	if c.Decimals < 0 || c.Decimals > state.MaxDecimals {
		bad("decimals %d out of range 0..%d", c.Decimals, state.MaxDecimals)
	}
	if _, err := c.Kind(); err != nil {
		errs = append(errs, fmt.Errorf("default_kind: %w: %w", err, ErrInvalid))
	}
	if c.HistoryLimit < 0 {
		bad("history_limit %d is negative", c.HistoryLimit)
	}
	if c.Width <= 0 || c.Height <= 0 {
		bad("window size %gx%g must be positive", c.Width, c.Height)
	}
	if c.PreviewPort < 0 || c.PreviewPort > 65535 {
		bad("preview_port %d out of range", c.PreviewPort)
	}
	return errors.Join(errs...)
}

// Kind returns the default draw shape. MoveTo and Close are not drawable
// and are rejected.
func (c Config) Kind() (state.Kind, error) {
	k, err := state.ParseKind(c.DefaultKind)
	if err != nil {
		return k, err
	}
	if k == state.KindMoveTo || k == state.KindClose {
		return k, fmt.Errorf("%s cannot be drawn", k)
	}
	return k, nil
}

// FrameInterval is the time between two sampled frames.
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(c.FPS)
}
