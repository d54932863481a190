package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jason-s-yu/solitaire/engine/spider"
	"github.com/jason-s-yu/solitaire/internal/game"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidColors is returned when SOLITAIRE_SPIDER_COLORS is not 1, 2 or 4.
	ErrInvalidColors = errors.New("spider colours must be 1, 2 or 4")
	// ErrInvalidScale is returned when SOLITAIRE_SCALE is outside 1..8.
	ErrInvalidScale  = errors.New("window scale must be between 1 and 8")
)

const maxScale = 8

// Config holds the settings read at startup.
type Config struct {
	Variant      game.Variant
	AssetsDir    string
	Scale        int
	Seed         int64 // 0 picks a time-based seed at startup
	SpiderColors int
	Debug        bool
	LogLevel     logrus.Level
	LogFormat    string
}

// Load reads an optional .env file from the working directory, then the
// environment.
func Load() (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}
	return FromEnv()
}

// loadDotEnv merges path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: loading %s: %w", path, err)
	}
	return nil
}

// FromEnv builds a Config from environment variables alone.
func FromEnv() (Config, error) {
	c := Config{
		AssetsDir: envOr("SOLITAIRE_ASSETS", "res"),
		LogFormat: strings.ToLower(envOr("LOG_FORMAT", "text")),
	}

	variant, err := game.ParseVariant(envOr("SOLITAIRE_VARIANT", string(game.VariantKlondike)))
	if err != nil {
		return Config{}, fmt.Errorf("config: SOLITAIRE_VARIANT: %w", err)
	}
	c.Variant = variant

	if c.Scale, err = envInt("SOLITAIRE_SCALE", 3); err != nil {
		return Config{}, err
	}
	if c.Scale < 1 || c.Scale > maxScale {
		return Config{}, fmt.Errorf("config: SOLITAIRE_SCALE=%d: %w", c.Scale, ErrInvalidScale)
	}

	if v := os.Getenv("SOLITAIRE_SEED"); v != "" {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("config: invalid SOLITAIRE_SEED %q: %w", v, err)
		}
	}

	if c.SpiderColors, err = envInt("SOLITAIRE_SPIDER_COLORS", spider.DefaultColors); err != nil {
		return Config{}, err
	}
	if !spider.ValidColors(c.SpiderColors) {
		return Config{}, fmt.Errorf("config: SOLITAIRE_SPIDER_COLORS=%d: %w", c.SpiderColors, ErrInvalidColors)
	}

	if v := os.Getenv("SOLITAIRE_DEBUG"); v != "" {
		if c.Debug, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("config: invalid SOLITAIRE_DEBUG %q: %w", v, err)
		}
	}

	if c.LogLevel, err = logrus.ParseLevel(envOr("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return Config{}, fmt.Errorf("config: invalid LOG_FORMAT %q", c.LogFormat)
	}
	return c, nil
}

// WithVariant returns c with the variant replaced by the named one.
func (c Config) WithVariant(name string) (Config, error) {
	v, err := game.ParseVariant(name)
	if err != nil {
		return c, fmt.Errorf("config: variant argument: %w", err)
	}
	c.Variant = v
	return c, nil
}

// SeedAt returns the configured seed, or one derived from now when unset.
func (c Config) SeedAt(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}

// NewLogger builds the process logger described by c.
func (c Config) NewLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
