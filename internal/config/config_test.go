package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.Verbose)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("VARATE_FORMAT", "json")
	t.Setenv("VARATE_VERBOSE", "true")
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.NoColor)
}

func TestLoadRejectsBadBool(t *testing.T) {
	t.Setenv("VARATE_VERBOSE", "maybe")
	_, err := Load()
	require.Error(t, err)
}
