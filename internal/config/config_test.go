package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditlens-dev/auditlens/internal/model"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Header.Window = 25
	cfg.Reconcile.CheckMissingHeight = true

	path := filepath.Join(t.TempDir(), "auditlens.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Header.Keywords, got.Header.Keywords)
	assert.Equal(t, 25, got.Header.Window)
	assert.Equal(t, StrategyFirstThreshold, got.Header.Strategy)
	assert.Equal(t, cfg.Roles, got.Roles)
	assert.Equal(t, cfg.Categories, got.Categories)
	assert.InDelta(t, 0.01, got.Reconcile.Tolerance, 1e-9)
	assert.True(t, got.Reconcile.CheckMissingHeight)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 20, cfg.Header.Window)
	assert.Equal(t, 2, cfg.Header.MinMatches)
	assert.Equal(t, StrategyFirstThreshold, cfg.Header.Strategy)
	assert.InDelta(t, 0.01, cfg.Reconcile.Tolerance, 1e-9)
	assert.InDelta(t, 2.0, cfg.Reconcile.ZScoreThreshold, 1e-9)
	assert.False(t, cfg.Reconcile.CheckMissingHeight)

	// Rule order is the classification contract: debit and credit first,
	// liability before asset.
	require.NotEmpty(t, cfg.Roles)
	assert.Equal(t, model.RoleDebit, cfg.Roles[0].Role)
	assert.Equal(t, model.RoleCredit, cfg.Roles[1].Role)
	require.NotEmpty(t, cfg.Categories)
	assert.Equal(t, model.CategoryLiability, cfg.Categories[0].Category)
	assert.Equal(t, model.CategoryAsset, cfg.Categories[1].Category)
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auditlens.yaml")
	partial := "reconcile:\n  tolerance: 0.5\n"
	require.NoError(t, os.WriteFile(path, []byte(partial), 0o644))

	got, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, got.Reconcile.Tolerance, 1e-9)
	assert.Equal(t, 20, got.Header.Window)
	assert.NotEmpty(t, got.Roles)
	assert.NotEmpty(t, got.Categories)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
