// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRuntimeConfig_FromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OMERODIR", dir)
	t.Setenv("EXTCONFIG_LOG_LEVEL", "debug")

	cfg, err := GetRuntimeConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.BaseDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestGetRuntimeConfig_OverridesFillGaps(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OMERODIR", "")
	t.Setenv("EXTCONFIG_LOG_LEVEL", "")

	cfg, err := GetRuntimeConfig(&RuntimeConfig{BaseDir: dir, LogLevel: "info"})
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.BaseDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestGetRuntimeConfig_EnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OMERODIR", dir)

	cfg, err := GetRuntimeConfig(&RuntimeConfig{BaseDir: "/somewhere/else"})
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.BaseDir)
}

func TestGetRuntimeConfig_MissingBaseDir(t *testing.T) {
	t.Setenv("OMERODIR", "")

	_, err := GetRuntimeConfig(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingEnvironment)
}

func TestGetRuntimeConfig_BaseDirNotADirectory(t *testing.T) {
	t.Setenv("OMERODIR", "/definitely/not/a/real/path")

	_, err := GetRuntimeConfig(nil)
	assert.ErrorIs(t, err, ErrMissingEnvironment)
}
