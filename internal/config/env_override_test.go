package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("TOUR_OFFSET sets offset", func(t *testing.T) {
		clearTourEnv(t)
		t.Setenv("TOUR_OFFSET", "-3")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, int32(-3), cfg.Tour.Offset)
	})

	t.Run("unparsable TOUR_OFFSET is ignored", func(t *testing.T) {
		clearTourEnv(t)
		t.Setenv("TOUR_OFFSET", "fifty")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, int32(50), cfg.Tour.Offset)
	})

	t.Run("TOUR_FORMAT and TOUR_LOG_LEVEL are lowercased", func(t *testing.T) {
		clearTourEnv(t)
		t.Setenv("TOUR_FORMAT", "JSON")
		t.Setenv("TOUR_LOG_LEVEL", "Debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "json", cfg.Tour.Format)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("NO_COLOR forces plain output", func(t *testing.T) {
		clearTourEnv(t)
		t.Setenv("TOUR_PLAIN", "false")
		t.Setenv("NO_COLOR", "1")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.True(t, cfg.UX.Plain)
	})

	t.Run("TOUR_PLAIN", func(t *testing.T) {
		clearTourEnv(t)
		t.Setenv("TOUR_PLAIN", "true")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.True(t, cfg.UX.Plain)
	})
}
