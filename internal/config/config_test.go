package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("NUM_PERCENTILES", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.Database.URL)
	assert.Equal(t, "RT", cfg.Data.RTColumn)
	assert.Equal(t, "Modality", cfg.Data.ModalityColumn)
	assert.Equal(t, 10, cfg.Data.NumPercentiles)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RT_COLUMN", "latency")
	t.Setenv("NUM_PERCENTILES", "5")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "latency", cfg.Data.RTColumn)
	assert.Equal(t, 5, cfg.Data.NumPercentiles)
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("NUM_PERCENTILES", "ten")

	cfg := Load()
	assert.Equal(t, 10, cfg.Data.NumPercentiles)
}
