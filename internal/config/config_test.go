package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
files:
  missing: Empty
random:
  seed: 42
log:
  level: DEBUG
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, MissingEmpty, cfg.Files.Missing)
	assert.Equal(t, uint64(42), cfg.Random.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"bad yaml", "files: [", "invalid YAML"},
		{"bad policy", "files:\n  missing: maybe\n", "files.missing"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Parse([]byte(tt.input), Default())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSet(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Set(KeySeed, int64(7)))
	require.NoError(t, cfg.Set(KeyMissing, "empty"))
	require.NoError(t, cfg.Set(KeyLogLevel, "Info"))

	assert.Equal(t, uint64(7), cfg.Random.Seed)
	assert.Equal(t, MissingEmpty, cfg.Files.Missing)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.Error(t, cfg.Set(KeyMissing, 3))
	assert.Error(t, cfg.Set("colour", "red"))
	assert.Error(t, cfg.Set(KeyMissing, "sometimes"))
}
