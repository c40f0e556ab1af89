//go:build !nodbc

package dbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig(t *testing.T) {
	t.Cleanup(func() {
		Enable()
		SetVarFormat(FormatInline)
	})
}

func TestConfigureFromEnv(t *testing.T) {
	resetConfig(t)
	t.Setenv(EnvDisable, " Yes ")
	t.Setenv(EnvVarFormat, "indented")

	require.NoError(t, ConfigureFromEnv())
	assert.False(t, Enabled())
	_, _, format := currentSettings()
	assert.Equal(t, FormatIndented, format)

	t.Setenv(EnvDisable, "off")
	require.NoError(t, ConfigureFromEnv())
	assert.True(t, Enabled())
}

func TestConfigureFromEnv_Unset(t *testing.T) {
	resetConfig(t)
	t.Setenv(EnvDisable, "")
	t.Setenv(EnvVarFormat, "  ")

	require.NoError(t, ConfigureFromEnv())
	assert.True(t, Enabled())
	_, _, format := currentSettings()
	assert.Equal(t, FormatInline, format)
}

func TestConfigureFromEnv_Invalid(t *testing.T) {
	resetConfig(t)
	t.Setenv(EnvDisable, "maybe")
	t.Setenv(EnvVarFormat, "json")

	err := ConfigureFromEnv()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), EnvDisable)
	assert.Contains(t, err.Error(), EnvVarFormat)
	assert.True(t, Enabled(), "Invalid values should be skipped")
}

func TestConfigureFromEnv_CaseInsensitiveKey(t *testing.T) {
	resetConfig(t)
	t.Setenv("dbc_disable", "1")

	require.NoError(t, ConfigureFromEnv())
	assert.False(t, Enabled())
}

func TestConfigureFromEnv_ExactKeyWins(t *testing.T) {
	resetConfig(t)
	t.Setenv("dbc_disable", "1")
	t.Setenv("Dbc_Disable", "yes")
	t.Setenv(EnvDisable, "0")

	require.NoError(t, ConfigureFromEnv())
	assert.True(t, Enabled(), "The exact key should be used regardless of environment order")
}
