// Package config holds the demo host settings. Precedence, lowest first:
// built-in defaults, the YAML file, environment variables, flags.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/OpticalFlyer/paneui/logger"
)

// ErrInvalid is returned for settings that fail validation.
var ErrInvalid = errors.New("config: invalid")

// Config is the host configuration.
type Config struct {
	Width             int           `yaml:"width"`
	Height            int           `yaml:"height"`
	LogLevel          string        `yaml:"log_level"`
	Timeout           time.Duration `yaml:"timeout"`
	TitleBarThickness float64       `yaml:"title_bar_thickness"`
	FontSize          float64       `yaml:"font_size"`
	DoubleClick       time.Duration `yaml:"double_click"`
	TPS               int           `yaml:"tps"`
	Textures          string        `yaml:"textures"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:             800,
		Height:            600,
		LogLevel:          "info",
		TitleBarThickness: 20,
		DoubleClick:       400 * time.Millisecond,
		TPS:               60,
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "read %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Validate checks ranges and the log level.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalid, "window size %dx%d", c.Width, c.Height)
	}
	if c.Timeout < 0 {
		return errors.Wrapf(ErrInvalid, "timeout must be non-negative, got %v", c.Timeout)
	}
	if c.TitleBarThickness <= 0 {
		return errors.Wrapf(ErrInvalid, "title bar thickness %v", c.TitleBarThickness)
	}
	if c.FontSize < 0 {
		return errors.Wrapf(ErrInvalid, "font size %v", c.FontSize)
	}
	if c.DoubleClick < 0 {
		return errors.Wrapf(ErrInvalid, "double click interval %v", c.DoubleClick)
	}
	if c.TPS <= 0 {
		return errors.Wrapf(ErrInvalid, "tps %d", c.TPS)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalid, "%v", err)
	}
	return nil
}

// ParseArgs builds the configuration from command line arguments. The
// -config file is loaded first; flags given explicitly override it, and
// LOG_LEVEL and PANEUI_TIMEOUT apply when the matching flag is absent.
func ParseArgs(args []string) (Config, error) {
	fs := flag.NewFlagSet("paneui", flag.ContinueOnError)

	var (
		path        string
		width       int
		height      int
		logLevel    string
		timeoutSec  int
		thickness   float64
		fontSize    float64
		doubleClick time.Duration
		tps         int
		textures    string
	)
	fs.StringVar(&path, "config", "", "YAML configuration file")
	fs.IntVar(&width, "width", 0, "window width")
	fs.IntVar(&height, "height", 0, "window height")
	fs.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&logLevel, "l", "", "log level (shorthand)")
	fs.IntVar(&timeoutSec, "timeout", 0, "exit after this many seconds (0 runs forever)")
	fs.IntVar(&timeoutSec, "t", 0, "timeout in seconds (shorthand)")
	fs.Float64Var(&thickness, "title-bar", 0, "title bar thickness in pixels")
	fs.Float64Var(&fontSize, "font-size", 0, "font size in pixels (0 uses the bitmap face)")
	fs.DurationVar(&doubleClick, "double-click", 0, "double click interval")
	fs.IntVar(&tps, "tps", 0, "ticks per second")
	fs.StringVar(&textures, "textures", "", "directory of texture images")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["width"] {
		cfg.Width = width
	}
	if set["height"] {
		cfg.Height = height
	}
	if set["title-bar"] {
		cfg.TitleBarThickness = thickness
	}
	if set["font-size"] {
		cfg.FontSize = fontSize
	}
	if set["double-click"] {
		cfg.DoubleClick = doubleClick
	}
	if set["tps"] {
		cfg.TPS = tps
	}
	if set["textures"] {
		cfg.Textures = textures
	}

	switch {
	case set["log-level"] || set["l"]:
		cfg.LogLevel = strings.ToLower(logLevel)
	case os.Getenv("LOG_LEVEL") != "":
		cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	}

	switch {
	case set["timeout"] || set["t"]:
		if timeoutSec < 0 {
			return Config{}, errors.Wrapf(ErrInvalid, "timeout must be non-negative, got %d", timeoutSec)
		}
		cfg.Timeout = time.Duration(timeoutSec) * time.Second
	case os.Getenv("PANEUI_TIMEOUT") != "":
		if sec, err := strconv.Atoi(os.Getenv("PANEUI_TIMEOUT")); err == nil && sec > 0 {
			cfg.Timeout = time.Duration(sec) * time.Second
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
