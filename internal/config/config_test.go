package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	_, res := NormalizeAndValidate(Default())
	assert.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestNormalizeRegions(t *testing.T) {
	cfg := Default()
	cfg.Sources.Naukri.Regions = []string{" Pune ", "pune", "", "Mumbai"}

	out, res := NormalizeAndValidate(cfg)
	require.True(t, res.OK())
	assert.Equal(t, []string{"pune", "mumbai"}, out.Sources.Naukri.Regions)
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := Default()
	cfg.App.Port = 0
	require.Error(t, Validate(cfg))

	cfg.App.Port = 70000
	require.Error(t, Validate(cfg))
}

func TestValidateWarnsWhenNoSourcesEnabled(t *testing.T) {
	cfg := Default()
	cfg.Sources.LinkedIn.Enabled = false
	cfg.Sources.Indeed.Enabled = false
	cfg.Sources.Naukri.Enabled = false
	cfg.Sources.TimesJobs.Enabled = false
	cfg.Sources.Shine.Enabled = false

	_, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.NotEmpty(t, res.Warnings)
}

func TestValidateDisabledSourceSkipsCapCheck(t *testing.T) {
	cfg := Default()
	cfg.Sources.Shine.Enabled = false
	cfg.Sources.Shine.MaxPostings = 0
	assert.NoError(t, Validate(cfg))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	cfg := Default()
	cfg.App.Port = 9999
	cfg.Cache.TTLMinutes = 30
	require.NoError(t, SaveAtomic(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9999, got.App.Port)
	assert.Equal(t, 30, got.Cache.TTLMinutes)
	assert.Equal(t, cfg.Sources.Naukri.Regions, got.Sources.Naukri.Regions)
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	require.NoError(t, SaveAtomic(path, Default()))

	cfg := Default()
	cfg.App.Port = 12345
	require.NoError(t, SaveAtomic(path, cfg))

	_, err := os.Stat(path + ".bak")
	assert.NoError(t, err)
}

func TestEnsureUserConfig(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yml"), path)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().App.Port, got.App.Port)

	// second call leaves the existing file alone
	got.App.Port = 4242
	require.NoError(t, SaveAtomic(path, got))
	_, err = EnsureUserConfig(dir)
	require.NoError(t, err)
	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4242, reloaded.App.Port)
}
