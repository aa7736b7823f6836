package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditlens-dev/auditlens/internal/config"
)

func TestRunInit_WritesConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, false))

	path := filepath.Join(dir, configFileName)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Header.Window)
	assert.NotEmpty(t, cfg.Categories)
}

func TestRunInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, false))

	err := runInit(dir, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, runInit(dir, true))
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, config.Save(path, config.Default()))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Header.MinMatches)
}

func TestLoadConfig_FallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.StrategyFirstThreshold, cfg.Header.Strategy)
}
