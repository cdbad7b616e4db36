// Package config loads driftfield settings: built-in defaults, an optional
// YAML file, an optional .env file and DRIFTFIELD_* environment variables,
// applied in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"math/rand/v2"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/olivier-w/driftfield/internal/particles"
	"gopkg.in/yaml.v3"
)

// Particles tunes the particle field.
type Particles struct {
	Count          int     `yaml:"count"`
	LinkDistance   float64 `yaml:"link_distance"`
	MaxLinkOpacity float64 `yaml:"max_link_opacity"`
	Blur           float64 `yaml:"blur"`
	GridCutoff     int     `yaml:"grid_cutoff"`
	// Seed fixes the random source; zero picks a random seed.
	Seed uint64 `yaml:"seed"`
}

// FieldOptions maps the settings onto particle field options.
func (p Particles) FieldOptions() particles.Options {
	opts := particles.DefaultOptions()
	opts.Count = p.Count
	opts.LinkDistance = p.LinkDistance
	opts.MaxLinkOpacity = p.MaxLinkOpacity
	opts.Blur = p.Blur
	opts.GridCutoff = p.GridCutoff
	return opts
}

// NewRand returns a PCG source for a non-zero seed, or nil so the field picks
// a random one.
func NewRand(seed uint64) particles.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Terminal tunes the terminal view.
type Terminal struct {
	FPS int `yaml:"fps"`
	// CellWidth and CellHeight are the viewport units covered by one
	// terminal cell.
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	// LogFile receives the log while the terminal view owns the screen.
	LogFile string `yaml:"log_file"`
}

// Window tunes the desktop window.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Server tunes the snapshot endpoint.
type Server struct {
	Addr string `yaml:"addr"`
}

type Stat struct {
	Label string `yaml:"label"`
	Value int    `yaml:"value"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

type Panel struct {
	Name   string  `yaml:"name"`
	Skills []Skill `yaml:"skills"`
}

// Content is the text shown in the hero panel.
type Content struct {
	Title   string   `yaml:"title"`
	Tagline string   `yaml:"tagline"`
	Phrases []string `yaml:"phrases"`
	Stats   []Stat   `yaml:"stats"`
	Panels  []Panel  `yaml:"panels"`
}

type Config struct {
	Particles Particles `yaml:"particles"`
	Terminal  Terminal  `yaml:"terminal"`
	Window    Window    `yaml:"window"`
	Server    Server    `yaml:"server"`
	Content   Content   `yaml:"content"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Particles: Particles{
			Count:          80,
			LinkDistance:   120,
			MaxLinkOpacity: 0.12,
			Blur:           8,
			GridCutoff:     400,
		},
		Terminal: Terminal{FPS: 30, CellWidth: 8, CellHeight: 16},
		Window:   Window{Width: 1280, Height: 720, Title: "driftfield"},
		Server:   Server{Addr: ":8080"},
		Content: Content{
			Title:   "JK Liwin Jose",
			Tagline: "Computer Vision & ML Engineer",
			Phrases: []string{
				"Vision Systems.",
				"YOLO Detectors.",
				"Deep Learning Pipelines.",
				"Production AI.",
			},
			Stats: []Stat{
				{Label: "projects", Value: 25},
				{Label: "models shipped", Value: 12},
				{Label: "publications", Value: 4},
			},
			Panels: []Panel{
				{Name: "Vision", Skills: []Skill{
					{Name: "Object detection", Level: 92},
					{Name: "Segmentation", Level: 85},
					{Name: "Tracking", Level: 80},
				}},
				{Name: "ML", Skills: []Skill{
					{Name: "PyTorch", Level: 90},
					{Name: "Model optimisation", Level: 82},
					{Name: "MLOps", Level: 75},
				}},
				{Name: "Engineering", Skills: []Skill{
					{Name: "Python", Level: 93},
					{Name: "C++", Level: 72},
					{Name: "Docker", Level: 78},
				}},
			},
		},
	}
}

// Load builds the configuration. path may be empty; a named file that does
// not exist is an error, a missing .env is not.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if err := envInt("DRIFTFIELD_COUNT", &cfg.Particles.Count); err != nil {
		return err
	}
	if err := envInt("DRIFTFIELD_FPS", &cfg.Terminal.FPS); err != nil {
		return err
	}
	if v, ok := os.LookupEnv("DRIFTFIELD_LINK_DISTANCE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("DRIFTFIELD_LINK_DISTANCE: %w", err)
		}
		cfg.Particles.LinkDistance = f
	}
	if v, ok := os.LookupEnv("DRIFTFIELD_SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("DRIFTFIELD_SEED: %w", err)
		}
		cfg.Particles.Seed = n
	}
	if v, ok := os.LookupEnv("DRIFTFIELD_ADDR"); ok {
		cfg.Server.Addr = v
	}
	if v, ok := os.LookupEnv("DRIFTFIELD_LOG"); ok {
		cfg.Terminal.LogFile = v
	}
	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

// Validate checks every bound the rest of the program relies on.
func (c Config) Validate() error {
	var errs []error
	if c.Particles.Count < 0 {
		errs = append(errs, fmt.Errorf("particles.count must be >= 0, got %d", c.Particles.Count))
	}
	if c.Particles.LinkDistance <= 0 {
		errs = append(errs, fmt.Errorf("particles.link_distance must be > 0, got %g", c.Particles.LinkDistance))
	}
	if c.Particles.MaxLinkOpacity < 0 || c.Particles.MaxLinkOpacity > 1 {
		errs = append(errs, fmt.Errorf("particles.max_link_opacity must be in [0,1], got %g", c.Particles.MaxLinkOpacity))
	}
	if c.Particles.Blur < 0 {
		errs = append(errs, fmt.Errorf("particles.blur must be >= 0, got %g", c.Particles.Blur))
	}
	if c.Terminal.FPS <= 0 || c.Terminal.FPS > 240 {
		errs = append(errs, fmt.Errorf("terminal.fps must be in 1..240, got %d", c.Terminal.FPS))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("terminal cell size must be positive, got %dx%d", c.Terminal.CellWidth, c.Terminal.CellHeight))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	for _, p := range c.Content.Panels {
		for _, s := range p.Skills {
			if s.Level < 0 || s.Level > 100 {
				errs = append(errs, fmt.Errorf("skill %q level must be in 0..100, got %d", s.Name, s.Level))
			}
		}
	}
	return errors.Join(errs...)
}
