// Package config loads the fly demo's YAML configuration.
//
// Every field is optional; missing fields keep the values from Default. Controller speeds
// pass through the controller's setters, so .nan and .inf fall back to the controller
// defaults instead of being rejected here.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-fly/engine/camera"
	"github.com/Carmen-Shannon/oxy-fly/engine/renderer"
	"github.com/Carmen-Shannon/oxy-fly/engine/window"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Readout kinds accepted in the readout.kind field.
const (
	ReadoutLog      = "log"
	ReadoutTerminal = "terminal"
)

var (
	// ErrInvalidReadout is returned when readout.kind is not one of the known kinds.
	ErrInvalidReadout = errors.New("invalid readout kind")
	// ErrInvalidPresentMode is returned when renderer.present_mode is not vsync or uncapped.
	ErrInvalidPresentMode = errors.New("invalid present mode")
	// ErrInvalidWindowSize is returned when the window width or height is not positive.
	ErrInvalidWindowSize = errors.New("invalid window size")
)

// Config is the top-level configuration document.
type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Window     WindowConfig     `yaml:"window"`
	Engine     EngineConfig     `yaml:"engine"`
	Renderer   RendererConfig   `yaml:"renderer"`
	Controller ControllerConfig `yaml:"controller"`
	Readout    ReadoutConfig    `yaml:"readout"`
	Profiler   ProfilerConfig   `yaml:"profiler"`
}

// WindowConfig configures the GLFW window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// EngineConfig configures the engine loops.
type EngineConfig struct {
	TickRate         float64 `yaml:"tick_rate"`
	RenderFrameLimit float64 `yaml:"render_frame_limit"`
}

// RendererConfig configures the horizon renderer.
type RendererConfig struct {
	PresentMode   string `yaml:"present_mode"`
	ForceSoftware bool   `yaml:"force_software"`
}

// ControllerConfig configures the fly controller.
type ControllerConfig struct {
	MovementSpeed    float32 `yaml:"movement_speed"`
	RollSpeed        float32 `yaml:"roll_speed"`
	AutoForward      bool    `yaml:"auto_forward"`
	DragToLook       bool    `yaml:"drag_to_look"`
	MouseInteractive bool    `yaml:"mouse_interactive"`
}

// ReadoutConfig selects where the camera pose is displayed.
type ReadoutConfig struct {
	Kind     string        `yaml:"kind"`
	Interval time.Duration `yaml:"interval"`
}

// ProfilerConfig configures the performance monitor.
type ProfilerConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Interval  time.Duration `yaml:"interval"`
	StatsAddr string        `yaml:"stats_addr"`
}

// Default returns the configuration used when no file is given.
//
// Returns:
//   - *Config: a new Config holding the defaults
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Title:  "oxy-fly",
			Width:  1280,
			Height: 720,
		},
		Engine: EngineConfig{
			TickRate: 60,
		},
		Renderer: RendererConfig{
			PresentMode: renderer.PresentModeVSync.String(),
		},
		Controller: ControllerConfig{
			MovementSpeed: camera.DefaultMovementSpeed,
			RollSpeed:     camera.DefaultRollSpeed,
		},
		Readout: ReadoutConfig{
			Kind:     ReadoutLog,
			Interval: 250 * time.Millisecond,
		},
		Profiler: ProfilerConfig{
			Interval: time.Second,
		},
	}
}

// Load reads and validates the YAML file at path.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - *Config: the decoded configuration with defaults for missing fields
//   - error: error if the file cannot be read, decoded or validated
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document. Unknown fields are rejected.
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - *Config: the decoded configuration with defaults for missing fields
//   - error: error if the document cannot be decoded or validated
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that have a fixed set of values.
//
// Returns:
//   - error: a wrapped sentinel error describing the first invalid field, or nil
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindowSize, c.Window.Width, c.Window.Height)
	}
	switch strings.ToLower(c.Readout.Kind) {
	case ReadoutLog, ReadoutTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidReadout, c.Readout.Kind)
	}
	if _, err := c.PresentMode(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses log_level.
//
// Returns:
//   - logrus.Level: the configured level
//   - error: error if the level name is unknown
func (c *Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level: %w", err)
	}
	return lvl, nil
}

// PresentMode parses renderer.present_mode.
//
// Returns:
//   - renderer.PresentMode: the configured present mode
//   - error: ErrInvalidPresentMode if the name is unknown
func (c *Config) PresentMode() (renderer.PresentMode, error) {
	switch strings.ToLower(c.Renderer.PresentMode) {
	case renderer.PresentModeVSync.String():
		return renderer.PresentModeVSync, nil
	case renderer.PresentModeUncapped.String():
		return renderer.PresentModeUncapped, nil
	default:
		return renderer.PresentModeVSync, fmt.Errorf("%w: %q", ErrInvalidPresentMode, c.Renderer.PresentMode)
	}
}

// TerminalReadout reports whether the terminal readout was selected.
func (c *Config) TerminalReadout() bool {
	return strings.EqualFold(c.Readout.Kind, ReadoutTerminal)
}

// ControllerOptions maps the controller section onto fly controller options.
//
// Returns:
//   - []camera.FlyControllerOption: options for camera.NewFlyController
func (c *Config) ControllerOptions() []camera.FlyControllerOption {
	return []camera.FlyControllerOption{
		camera.WithMovementSpeed(c.Controller.MovementSpeed),
		camera.WithRollSpeed(c.Controller.RollSpeed),
		camera.WithAutoForward(c.Controller.AutoForward),
		camera.WithDragToLook(c.Controller.DragToLook),
		camera.WithMouseInteractive(c.Controller.MouseInteractive),
	}
}

// WindowOptions maps the window section onto window options.
//
// Returns:
//   - []window.WindowBuilderOption: options for window.NewWindow
func (c *Config) WindowOptions() []window.WindowBuilderOption {
	return []window.WindowBuilderOption{
		window.WithTitle(c.Window.Title),
		window.WithSize(c.Window.Width, c.Window.Height),
	}
}
