package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/overcastlab/weathercard/pkg/card"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CARD_ASSETS_DIR", "CARD_OUTPUT_DIR", "CARD_EVENT_PATH",
		"CARD_BACKGROUND_POLICY", "CARD_SUPERSAMPLE", "CARD_PARTICLE_SEED",
		"GITHUB_EVENT_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, warnings := Load()
	assert.Empty(t, warnings)
	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Equal(t, "weather", cfg.OutputDir)
	assert.Equal(t, "", cfg.EventPath)
	assert.Equal(t, card.PolicyPrimary, cfg.BackgroundPolicy)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, int64(DefaultParticleSeed), cfg.ParticleSeed)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CARD_ASSETS_DIR", "/opt/assets")
	t.Setenv("CARD_OUTPUT_DIR", "out")
	t.Setenv("CARD_BACKGROUND_POLICY", card.PolicyFixed)
	t.Setenv("CARD_SUPERSAMPLE", "3")
	t.Setenv("CARD_PARTICLE_SEED", "1234")

	cfg, warnings := Load()
	assert.Empty(t, warnings)
	assert.Equal(t, "/opt/assets", cfg.AssetsDir)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, card.PolicyFixed, cfg.BackgroundPolicy)
	assert.Equal(t, 3, cfg.Supersample)
	assert.Equal(t, int64(1234), cfg.ParticleSeed)
}

func TestEventPathFallsBackToGithubEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_EVENT_PATH", "/github/workflow/event.json")

	cfg, _ := Load()
	assert.Equal(t, "/github/workflow/event.json", cfg.EventPath)

	t.Setenv("CARD_EVENT_PATH", "/custom/event.json")
	cfg, _ = Load()
	assert.Equal(t, "/custom/event.json", cfg.EventPath)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("CARD_BACKGROUND_POLICY", "rainbow")
	t.Setenv("CARD_SUPERSAMPLE", "ten")
	t.Setenv("CARD_PARTICLE_SEED", "xyz")

	cfg, warnings := Load()
	assert.Len(t, warnings, 3)
	assert.Equal(t, card.PolicyPrimary, cfg.BackgroundPolicy)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, int64(DefaultParticleSeed), cfg.ParticleSeed)
}

func TestSupersampleOutOfRange(t *testing.T) {
	clearEnv(t)
	for _, v := range []string{"0", "-1", "5"} {
		t.Setenv("CARD_SUPERSAMPLE", v)
		cfg, warnings := Load()
		assert.NotEmpty(t, warnings, v)
		assert.Equal(t, 2, cfg.Supersample, v)
	}
}
