// Package config loads the TOML settings for the demo host and the layout geometry
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/shootpack/layout"
	"github.com/lixenwraith/shootpack/parameter"
)

var (
	ErrInvalidLayout   = errors.New("invalid layout config")
	ErrInvalidLoop     = errors.New("invalid loop config")
	ErrInvalidGauge    = errors.New("invalid gauge config")
	ErrInvalidViewport = errors.New("invalid viewport config")
	ErrUnknownKey      = errors.New("unknown config key")
)

type LayoutConfig struct {
	BaseMargin          float64 `toml:"base_margin"`
	CounterMarginBase   float64 `toml:"counter_margin_base"`
	CounterMarginFactor float64 `toml:"counter_margin_factor"`
	OriginY             float64 `toml:"origin_y"`
	Scale               float64 `toml:"scale"`
	Gap                 float64 `toml:"gap"`
	WrapRatio           float64 `toml:"wrap_ratio"`
	RowStep             float64 `toml:"row_step"`
}

type GaugeConfig struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Offset float64 `toml:"offset"`
}

type BlinkConfig struct {
	DurationMS int64 `toml:"duration_ms"`
	IntervalMS int64 `toml:"interval_ms"`
}

type LoopConfig struct {
	TickRate int `toml:"tick_rate"`
}

type ViewportConfig struct {
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	UnitsPerCellX float64 `toml:"units_per_cell_x"`
	UnitsPerCellY float64 `toml:"units_per_cell_y"`
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	ZeroToneHz float64 `toml:"zero_tone_hz"`
	ZeroToneMS int64   `toml:"zero_tone_ms"`
}

// Config is the full settings tree, every section is optional in the file
type Config struct {
	Layout   LayoutConfig   `toml:"layout"`
	Gauge    GaugeConfig    `toml:"gauge"`
	Blink    BlinkConfig    `toml:"blink"`
	Loop     LoopConfig     `toml:"loop"`
	Viewport ViewportConfig `toml:"viewport"`
	Log      LogConfig      `toml:"log"`
	Audio    AudioConfig    `toml:"audio"`
}

// Default returns the built-in settings
func Default() Config {
	p := layout.DefaultParams()
	return Config{
		Layout: LayoutConfig{
			BaseMargin:          p.BaseMargin,
			CounterMarginBase:   p.CounterMarginBase,
			CounterMarginFactor: p.CounterMarginFactor,
			OriginY:             p.OriginY,
			Scale:               p.Scale,
			Gap:                 p.Gap,
			WrapRatio:           p.WrapRatio,
			RowStep:             p.RowStep,
		},
		Gauge: GaugeConfig{
			Width:  parameter.DefaultGaugeWidth,
			Height: parameter.DefaultGaugeHeight,
			Offset: parameter.DefaultGaugeOffset,
		},
		Blink: BlinkConfig{
			DurationMS: parameter.DefaultBlinkDuration.Milliseconds(),
			IntervalMS: parameter.DefaultBlinkInterval.Milliseconds(),
		},
		Loop: LoopConfig{TickRate: parameter.DefaultTickRate},
		Viewport: ViewportConfig{
			Width:         parameter.DefaultViewportWidth,
			Height:        parameter.DefaultViewportHeight,
			UnitsPerCellX: parameter.DefaultUnitsPerCellX,
			UnitsPerCellY: parameter.DefaultUnitsPerCellY,
		},
		Log: LogConfig{Level: "info"},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: parameter.AudioSampleRate,
			ZeroToneHz: parameter.ZeroToneFrequency,
			ZeroToneMS: parameter.ZeroToneDuration.Milliseconds(),
		},
	}
}

// Load decodes path over the defaults and validates the result
// Keys the file sets but Config does not know are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	l := c.Layout
	switch {
	case l.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidLayout, l.Scale)
	case l.WrapRatio <= 0 || l.WrapRatio > 1:
		return fmt.Errorf("%w: wrap_ratio must be in (0,1], got %v", ErrInvalidLayout, l.WrapRatio)
	case l.Gap < 0 || l.RowStep < 0 || l.BaseMargin < 0:
		return fmt.Errorf("%w: gap, row_step and base_margin must not be negative", ErrInvalidLayout)
	}

	if c.Loop.TickRate <= 0 || c.Loop.TickRate > 1000 {
		return fmt.Errorf("%w: tick_rate must be in [1,1000], got %d", ErrInvalidLoop, c.Loop.TickRate)
	}

	g := c.Gauge
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidGauge, g.Width, g.Height)
	}
	if c.Blink.DurationMS <= 0 || c.Blink.IntervalMS <= 0 {
		return fmt.Errorf("%w: blink duration and interval must be positive", ErrInvalidGauge)
	}

	v := c.Viewport
	if v.Width <= 0 || v.Height <= 0 || v.UnitsPerCellX <= 0 || v.UnitsPerCellY <= 0 {
		return fmt.Errorf("%w: dimensions must be positive", ErrInvalidViewport)
	}
	return nil
}

// LayoutParams converts the layout section for the layout engine
func (c Config) LayoutParams() layout.Params {
	l := c.Layout
	return layout.Params{
		BaseMargin:          l.BaseMargin,
		CounterMarginBase:   l.CounterMarginBase,
		CounterMarginFactor: l.CounterMarginFactor,
		OriginY:             l.OriginY,
		Scale:               l.Scale,
		Gap:                 l.Gap,
		WrapRatio:           l.WrapRatio,
		RowStep:             l.RowStep,
	}
}

// TickInterval is the loop period derived from the tick rate
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Loop.TickRate)
}

func (b BlinkConfig) Duration() time.Duration {
	return time.Duration(b.DurationMS) * time.Millisecond
}

func (b BlinkConfig) Interval() time.Duration {
	return time.Duration(b.IntervalMS) * time.Millisecond
}

func (a AudioConfig) ZeroToneDuration() time.Duration {
	return time.Duration(a.ZeroToneMS) * time.Millisecond
}
