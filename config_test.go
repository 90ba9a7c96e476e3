package miragic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	assert.True(t, cfg.UseAPI)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "input", cfg.InputDir)
	assert.Equal(t, "output", cfg.OutputDir)
}

func TestConfigFromEnv(t *testing.T) {
	// t.Setenv несовместим с t.Parallel
	t.Setenv("MIRAGIC_API_KEY", "env-key")
	t.Setenv("MIRAGIC_API_BASE_URL", "https://staging.miragic.test/v2")
	t.Setenv("MIRAGIC_API_TIMEOUT", "7")

	cfg := ConfigFromEnv()
	require.NotNil(t, cfg)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "https://staging.miragic.test/v2", cfg.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.Timeout())
	// Незаданные переменные оставляют дефолты
	assert.True(t, cfg.UseAPI)
	assert.Equal(t, "input", cfg.InputDir)
}

func TestConfigTimeout_NonPositiveFallsBack(t *testing.T) {
	t.Parallel()

	cfg := Config{TimeoutSeconds: 0}
	assert.Equal(t, 30*time.Second, cfg.Timeout())

	cfg.TimeoutSeconds = -5
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}
