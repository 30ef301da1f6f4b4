package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
	assert.Equal(t, "set <key> <value>", configSetCmd.Use)
}

func TestConfigShow_Text(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Config file: :memory:")
	assert.Contains(t, stdout, "database.backend")
	assert.Contains(t, stdout, "postgres")
	assert.Contains(t, stdout, "5432")
	assert.Contains(t, stdout, "(not set)")
}

func TestConfig_DefaultsToShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := execute(t, "config")

	require.NoError(t, err)
	assert.Contains(t, stdout, "database.dbname")
}

func TestConfigShow_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := execute(t, "config", "show", "-o", "json")

	require.NoError(t, err)
	var view configView
	require.NoError(t, json.Unmarshal([]byte(stdout), &view))
	assert.Equal(t, ":memory:", view.Path)
	assert.NotEmpty(t, view.Settings)
}

func TestConfigSet(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := execute(t, "config", "set", "database.host", "db.internal")
	require.NoError(t, err)
	assert.Equal(t, "Set database.host\n", stdout)

	stdout, _, err = execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "db.internal")
}

func TestConfigSet_Invalid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "config", "set", "database.port", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = execute(t, "config", "set", "nope", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigSet_RequiresTwoArgs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "config", "set", "database.host")

	assert.Error(t, err)
}

func TestConfig_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	settingsService = nil

	_, _, err := execute(t, "config", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
