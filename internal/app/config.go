package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime options shared by the binaries. Values load from
// the environment and surface as flag defaults, so flags win over env.
type Config struct {
	// Out is the directory rendered figures land in.
	Out string `env:"COPLOT_OUT" envDefault:"figures"`

	// Format is the default render format.
	Format string `env:"COPLOT_FORMAT" envDefault:"png"`

	// Data is the root directory for dataset files.
	Data string `env:"COPLOT_DATA" envDefault:"."`

	// Width and Height override the render size in inches. Zero keeps each
	// figure's own preferred size.
	Width  float64 `env:"COPLOT_WIDTH"`
	Height float64 `env:"COPLOT_HEIGHT"`

	// Addr is the gallery listen address.
	Addr string `env:"COPLOT_ADDR" envDefault:":8080"`

	// Gallery is the base URL fetch pulls rendered figures from.
	Gallery string `env:"COPLOT_GALLERY" envDefault:"http://127.0.0.1:8080"`
}

// FromEnv loads the configuration from COPLOT_* variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
