// Package config reads runtime settings from environment variables
// (optionally seeded from a .env file). Loading is total: an invalid
// value falls back to its default with a warning, never an error, so
// configuration can never stop a card from rendering.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/overcastlab/weathercard/pkg/card"
)

// DefaultParticleSeed keeps decorative overlays reproducible when no
// seed is configured.
const DefaultParticleSeed = 7

// Config holds all settings for one invocation.
type Config struct {
	AssetsDir        string // CARD_ASSETS_DIR
	OutputDir        string // CARD_OUTPUT_DIR
	EventPath        string // CARD_EVENT_PATH, falls back to GITHUB_EVENT_PATH
	BackgroundPolicy string // CARD_BACKGROUND_POLICY: "primary" or "fixed"
	Supersample      int    // CARD_SUPERSAMPLE: 1..4
	ParticleSeed     int64  // CARD_PARTICLE_SEED
}

// Load reads configuration, applying defaults where unset or invalid.
func Load() (*Config, []string) {
	var warnings []string

	// A .env file is optional; system environment always applies.
	_ = godotenv.Load()

	cfg := &Config{
		AssetsDir:        envOrDefault("CARD_ASSETS_DIR", "assets"),
		OutputDir:        envOrDefault("CARD_OUTPUT_DIR", "weather"),
		EventPath:        envOrDefault("CARD_EVENT_PATH", os.Getenv("GITHUB_EVENT_PATH")),
		BackgroundPolicy: card.PolicyPrimary,
		Supersample:      2,
		ParticleSeed:     DefaultParticleSeed,
	}

	if v := os.Getenv("CARD_BACKGROUND_POLICY"); v != "" {
		switch v {
		case card.PolicyPrimary, card.PolicyFixed:
			cfg.BackgroundPolicy = v
		default:
			warnings = append(warnings, fmt.Sprintf("unknown CARD_BACKGROUND_POLICY %q — using %q", v, cfg.BackgroundPolicy))
		}
	}

	if v := os.Getenv("CARD_SUPERSAMPLE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 4 {
			cfg.Supersample = n
		} else {
			warnings = append(warnings, fmt.Sprintf("invalid CARD_SUPERSAMPLE %q — using %d", v, cfg.Supersample))
		}
	}

	if v := os.Getenv("CARD_PARTICLE_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.ParticleSeed = n
		} else {
			warnings = append(warnings, fmt.Sprintf("invalid CARD_PARTICLE_SEED %q — using %d", v, cfg.ParticleSeed))
		}
	}

	return cfg, warnings
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
