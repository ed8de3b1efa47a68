package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Shield the test from KEYB_* vars in the host environment.
	for _, key := range []string{"KEYB_VOLUME", "KEYB_SCALE", "KEYB_REVERB", "KEYB_DELAY", "KEYB_SEED"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, 0.7, cfg.Volume)
	assert.Equal(t, "major", cfg.Scale)
	assert.Equal(t, uint64(0), cfg.Seed)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("KEYB_VOLUME", "0.4")
	t.Setenv("KEYB_SCALE", "blues")
	t.Setenv("KEYB_SEED", "12345")

	cfg := Load()
	assert.Equal(t, 0.4, cfg.Volume)
	assert.Equal(t, "blues", cfg.Scale)
	assert.Equal(t, uint64(12345), cfg.Seed)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("KEYB_VOLUME", "loud")
	cfg := Load()
	assert.Equal(t, 0.7, cfg.Volume)
}
