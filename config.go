package translatable

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/translatable/translatable/pkg/lang"
	"github.com/translatable/translatable/pkg/translation"
)

// Config holds the environment-driven settings for the default translator.
// All fields are populated from environment variables for deployment
// convenience.
type Config struct {
	// Directory the translation resource files are loaded from.
	Path string `env:"TRANSLATABLE_PATH" envDefault:"./translations"`

	// Order sources are processed in: "alphabetical" or "unalphabetical",
	// compared case-insensitively by file path. Combined with Overlap this
	// decides which file wins when two define the same path.
	SeekMode string `env:"TRANSLATABLE_SEEK_MODE" envDefault:"alphabetical"`

	// Conflict policy: "overwrite" keeps the last source in processing
	// order, "ignore" keeps the first.
	Overlap string `env:"TRANSLATABLE_OVERLAP" envDefault:"overwrite"`

	// Language tried when a translation misses the requested one. Empty
	// disables the fallback.
	FallbackLanguage string `env:"TRANSLATABLE_FALLBACK_LANGUAGE"`

	// Text rendered when no language matches at all. Empty disables it.
	FallbackText string `env:"TRANSLATABLE_FALLBACK_TEXT"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("translatable: parsing environment: %w", err)
	}
	return cfg, nil
}

// Options expands the configuration into constructor options.
func (c Config) Options() ([]Option, error) {
	seek, err := parseSeekMode(c.SeekMode)
	if err != nil {
		return nil, err
	}
	policy, err := parseOverlap(c.Overlap)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithFS(os.DirFS(c.Path)),
		WithSeekMode(seek),
		WithConflictPolicy(policy),
	}

	if c.FallbackLanguage != "" {
		l, err := lang.Parse(c.FallbackLanguage)
		if err != nil {
			return nil, fmt.Errorf("translatable: fallback language: %w", err)
		}
		opts = append(opts, WithFallbackLanguage(l))
	}
	if c.FallbackText != "" {
		opts = append(opts, WithFallbackText(c.FallbackText))
	}

	return opts, nil
}

func parseSeekMode(value string) (translation.SeekMode, error) {
	switch value {
	case "alphabetical":
		return translation.SeekAlphabetical, nil
	case "unalphabetical":
		return translation.SeekUnalphabetical, nil
	}
	return 0, fmt.Errorf("translatable: invalid seek mode %q", value)
}

func parseOverlap(value string) (translation.ConflictPolicy, error) {
	switch value {
	case "overwrite":
		return translation.ConflictOverwrite, nil
	case "ignore":
		return translation.ConflictIgnore, nil
	}
	return 0, fmt.Errorf("translatable: invalid overlap policy %q", value)
}
