package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fdiskit/fdiskit/fdisk"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
size_format = "bytes"
unit = "cylinders"
wipe = true
`)

	c, err := loadConfig(path)
	require.NoError(t, err)
	require.True(t, c.Wipe)
	require.Equal(t, fdisk.SizeBytes, c.sizeFormat())
	require.Equal(t, fdisk.UnitCylinders, c.displayUnit())
}

func TestLoadConfig_Defaults(t *testing.T) {
	c, err := loadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	require.False(t, c.Wipe)
	require.Equal(t, fdisk.SizeHuman, c.sizeFormat())
	require.Equal(t, fdisk.UnitSectors, c.displayUnit())
}

func TestLoadConfig_BadValues(t *testing.T) {
	_, err := loadConfig(writeConfig(t, `size_format = "furlongs"`))
	require.Error(t, err)

	_, err = loadConfig(writeConfig(t, `unit = "heads"`))
	require.Error(t, err)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
