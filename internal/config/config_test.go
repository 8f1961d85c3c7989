package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/lvsim/internal/lotka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultDt, cfg.Dt)
	assert.Positive(t, cfg.Duration)
	assert.Equal(t, "t", cfg.TimeColumn)
	assert.NoError(t, cfg.Params().Validate())
}

func TestParams(t *testing.T) {
	cfg := &Config{Dt: 0.005, A: 1, B: 2, C: 3, D: 4, X0: 5, Y0: 6}
	assert.Equal(t, lotka.Params{Dt: 0.005, A: 1, B: 2, C: 3, D: 4, X0: 5, Y0: 6}, cfg.Params())
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("x0: 3\ny0: 4\ntime_column: step\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.X0)
	assert.Equal(t, 4.0, cfg.Y0)
	assert.Equal(t, "step", cfg.TimeColumn)
	assert.Equal(t, DefaultA, cfg.A)
	assert.Equal(t, DefaultDuration, cfg.Duration)
}

func TestLoadWithPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("duration: 10\n"), 0644))

	base := GetPreset("inner")
	cfg, err := LoadWith(path, base)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.X0)
	assert.Equal(t, 10.0, cfg.Duration)
	assert.Equal(t, 100.0, base.Duration, "base must not be modified")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dt: [1, 2"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lv.yaml")
	in := GetPreset("mid")
	require.NotNil(t, in)

	require.NoError(t, Save(path, in))
	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	require.NotNil(t, cfg)
	assert.Equal(t, 9.0, cfg.X0)
	assert.Equal(t, 20.0, cfg.Y0)
	assert.Equal(t, 100.0, cfg.Duration)

	cfg.X0 = 1
	assert.Equal(t, 9.0, GetPreset("classic").X0, "preset must not be mutated through the copy")
}

func TestGetPreset_NotFound(t *testing.T) {
	assert.Nil(t, GetPreset("nonexistent"))
}

func TestListPresets(t *testing.T) {
	assert.Equal(t, []string{"balanced", "classic", "inner", "mid"}, ListPresets())
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		p := GetPreset(name).Params()
		assert.NoError(t, p.Validate(), name)
	}
}
