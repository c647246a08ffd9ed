// Package config loads scroller options from a TOML file.
package config

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phanxgames/scroller"
)

// Config overlays scroller.Options. Unset pointer fields keep the defaults.
type Config struct {
	ScrollingX        *bool          `koanf:"scrolling_x"`
	ScrollingY        *bool          `koanf:"scrolling_y"`
	Animating         *bool          `koanf:"animating"`
	AnimationDuration *time.Duration `koanf:"animation_duration"` // e.g. "250ms"
	Bouncing          *bool          `koanf:"bouncing"`
	Locking           *bool          `koanf:"locking"`
	Paging            *bool          `koanf:"paging"`
	Snapping          *bool          `koanf:"snapping"`
	Zooming           *bool          `koanf:"zooming"`
	MinZoom           *float64       `koanf:"min_zoom"`
	MaxZoom           *float64       `koanf:"max_zoom"`
	SpeedMultiplier   *float64       `koanf:"speed_multiplier"`

	PenetrationDeceleration *float64 `koanf:"penetration_deceleration"`
	PenetrationAcceleration *float64 `koanf:"penetration_acceleration"`

	// Easing names as accepted by scroller.EasingByName.
	Easing            string `koanf:"easing"`
	InterruptedEasing string `koanf:"interrupted_easing"`

	SnapWidth           float64 `koanf:"snap_width"`
	SnapHeight          float64 `koanf:"snap_height"`
	PullToRefreshHeight float64 `koanf:"pull_to_refresh_height"` // 0 disables

	LogLevel string `koanf:"log_level"` // zap level name, default "info"

	Window WindowConfig `koanf:"window"`
}

// WindowConfig describes the demo window and its content.
type WindowConfig struct {
	Width         int     `koanf:"width"`
	Height        int     `koanf:"height"`
	ContentWidth  float64 `koanf:"content_width"`
	ContentHeight float64 `koanf:"content_height"`
	CellSize      float64 `koanf:"cell_size"`
	Script        string  `koanf:"script"` // gesture script replayed at startup
}

// Default returns a config that overrides nothing.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Width:         800,
			Height:        600,
			ContentWidth:  4000,
			ContentHeight: 4000,
			CellSize:      100,
		},
	}
}

// Load reads a TOML file over Default. Unknown keys are an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load scroller config %s: %w", path, err)
	}

	cfg := Default()
	err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			Result:           cfg,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("load scroller config %s: %w", path, err)
	}
	if _, err := cfg.ScrollerOptions(); err != nil {
		return nil, fmt.Errorf("load scroller config %s: %w", path, err)
	}
	return cfg, nil
}

// Apply overlays the keys set in c onto o.
func (c *Config) Apply(o *scroller.Options) error {
	setBool(&o.ScrollingX, c.ScrollingX)
	setBool(&o.ScrollingY, c.ScrollingY)
	setBool(&o.Animating, c.Animating)
	setBool(&o.Bouncing, c.Bouncing)
	setBool(&o.Locking, c.Locking)
	setBool(&o.Paging, c.Paging)
	setBool(&o.Snapping, c.Snapping)
	setBool(&o.Zooming, c.Zooming)

	if c.AnimationDuration != nil {
		o.AnimationDuration = *c.AnimationDuration
	}

	setFloat(&o.MinZoom, c.MinZoom)
	setFloat(&o.MaxZoom, c.MaxZoom)
	setFloat(&o.SpeedMultiplier, c.SpeedMultiplier)
	setFloat(&o.PenetrationDeceleration, c.PenetrationDeceleration)
	setFloat(&o.PenetrationAcceleration, c.PenetrationAcceleration)

	if c.Easing != "" {
		fn, ok := scroller.EasingByName(c.Easing)
		if !ok {
			return fmt.Errorf("%w: unknown easing %q", scroller.ErrInvalidArgument, c.Easing)
		}
		o.Easing = fn
	}
	if c.InterruptedEasing != "" {
		fn, ok := scroller.EasingByName(c.InterruptedEasing)
		if !ok {
			return fmt.Errorf("%w: unknown easing %q", scroller.ErrInvalidArgument, c.InterruptedEasing)
		}
		o.InterruptedEasing = fn
	}
	return nil
}

// ScrollerOptions returns scroller.DefaultOptions with c applied and
// validated.
func (c *Config) ScrollerOptions() (scroller.Options, error) {
	o := scroller.DefaultOptions()
	if err := c.Apply(&o); err != nil {
		return o, err
	}
	return o, o.Validate()
}

// Configure applies the size settings that live on the Scroller rather than
// in its options.
func (c *Config) Configure(s *scroller.Scroller) {
	if c.SnapWidth > 0 && c.SnapHeight > 0 {
		s.SetSnapSize(c.SnapWidth, c.SnapHeight)
	}
}

// Logger builds a development console logger at LogLevel writing to w.
func (c *Config) Logger(w zapcore.WriteSyncer) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if c.LogLevel != "" {
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return nil, fmt.Errorf("%w: log level %q", scroller.ErrInvalidArgument, c.LogLevel)
		}
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, w, level)), nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
