// Package config reads the server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"hidden_piece/i18n"
	"hidden_piece/transition"
)

// Config holds everything main needs to start the server.
type Config struct {
	Addr            string        `env:"HIDDEN_PIECE_ADDR"             envDefault:"0.0.0.0:9779"`
	DBPath          string        `env:"HIDDEN_PIECE_DB_PATH"          envDefault:"hidden_piece.db"`
	GeminiAPIKey    string        `env:"GEMINI_API_KEY"`
	Model           string        `env:"HIDDEN_PIECE_MODEL"            envDefault:"gemini-2.5-flash"`
	TransitionMode  string        `env:"HIDDEN_PIECE_TRANSITION_MODE"  envDefault:"tap"`
	TransitionDelay time.Duration `env:"HIDDEN_PIECE_TRANSITION_DELAY" envDefault:"2500ms"`
	Lang            string        `env:"HIDDEN_PIECE_LANG"             envDefault:"ko"`
	StaticDir       string        `env:"HIDDEN_PIECE_STATIC_DIR"       envDefault:"./static"`

	// PDFFont is a UTF-8 TrueType font for Korean text in downloaded PDFs.
	PDFFont string `env:"HIDDEN_PIECE_PDF_FONT"`
}

// LoadDotEnv loads variables from the given files, or .env when none are named.
// A missing file is not an error.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if _, err := transition.ParseMode(c.TransitionMode); err != nil {
		return fmt.Errorf("HIDDEN_PIECE_TRANSITION_MODE: %w", err)
	}
	if c.TransitionDelay <= 0 {
		return fmt.Errorf("HIDDEN_PIECE_TRANSITION_DELAY must be positive, got %s", c.TransitionDelay)
	}
	if _, ok := i18n.Parse(c.Lang); !ok {
		return fmt.Errorf("HIDDEN_PIECE_LANG: unsupported language %q", c.Lang)
	}
	if c.PDFFont != "" {
		if _, err := os.Stat(c.PDFFont); err != nil {
			return fmt.Errorf("HIDDEN_PIECE_PDF_FONT: %w", err)
		}
	}
	return nil
}

// Mode returns the validated transition mode.
func (c Config) Mode() transition.Mode {
	m, err := transition.ParseMode(c.TransitionMode)
	if err != nil {
		return transition.ModeTap
	}
	return m
}

// Language returns the default display language.
func (c Config) Language() language.Tag {
	tag, _ := i18n.Parse(c.Lang)
	return tag
}

// ChatEnabled reports whether a Gemini key is configured.
func (c Config) ChatEnabled() bool {
	return c.GeminiAPIKey != ""
}
