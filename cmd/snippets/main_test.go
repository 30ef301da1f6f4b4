package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Success(t *testing.T) {
	dir := t.TempDir()

	code := run([]string{"--config-dir", dir, "--backend", "sqlite", "put", "hello", "world"})
	assert.Equal(t, ExitSuccess, code)

	code = run([]string{"--config-dir", dir, "--backend", "sqlite", "get", "hello"})
	assert.Equal(t, ExitSuccess, code)
}

func TestRun_MissingCommand(t *testing.T) {
	code := run([]string{"--config-dir", t.TempDir()})

	assert.Equal(t, ExitError, code)
}

func TestRun_UnknownCommand(t *testing.T) {
	code := run([]string{"--config-dir", t.TempDir(), "delete", "hello"})

	assert.Equal(t, ExitError, code)
}

func TestRun_MissingArguments(t *testing.T) {
	code := run([]string{"--config-dir", t.TempDir(), "--backend", "sqlite", "put", "hello"})

	assert.Equal(t, ExitError, code)
}

func TestRun_ConnectionFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.toml"),
		[]byte("[database]\nbackend = \"postgres\"\nhost = \"127.0.0.1\"\nport = 1\n"),
		0600,
	))

	code := run([]string{"--config-dir", dir, "--backend", "postgres", "catalog"})

	assert.Equal(t, ExitError, code)
}
