package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/configloader/config"
)

// The package-level functions share one default store, so
// these tests do not run in parallel and reset it on cleanup.

func TestDefault_init_and_lookup(t *testing.T) {
	t.Cleanup(config.Reset)

	require.NoError(t, config.Init(
		"PARENT:\n  CHILD: {{ val }}",
		map[string]interface{}{"val": "VAL"},
	))

	got, err := config.Get("PARENT", "CHILD")
	require.NoError(t, err)
	assert.Equal(t, "VAL", got)

	found, err := config.HasKey("PARENT")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = config.HasKey("MISSING")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDefault_init_is_one_shot(t *testing.T) {
	t.Cleanup(config.Reset)

	require.NoError(t, config.Init("KEY: VAL", nil))

	err := config.Init("KEY: VAL", nil)
	require.ErrorIs(
		t, err, config.ErrAlreadyInitialized,
	)
}

func TestDefault_reset_rearms_initialization(
	t *testing.T,
) {
	t.Cleanup(config.Reset)

	require.NoError(t, config.Init("KEY: VAL", nil))

	config.Reset()

	_, err := config.Get("KEY")
	require.ErrorIs(t, err, config.ErrNotInitialized)

	require.NoError(t, config.Init("KEY: OTHER", nil))

	got, err := config.Get("KEY")
	require.NoError(t, err)
	assert.Equal(t, "OTHER", got)
}

func TestDefault_init_from_file(t *testing.T) {
	t.Cleanup(config.Reset)

	pa := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(
		pa, []byte("KEY: {{ val }}\n"), 0o600,
	))

	require.NoError(t, config.InitFromFile(
		pa, map[string]interface{}{"val": "VAL"},
	))

	got, err := config.Get("KEY")
	require.NoError(t, err)
	assert.Equal(t, "VAL", got)
}
