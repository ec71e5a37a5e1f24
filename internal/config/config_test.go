package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.PrettyLogs())
	assert.True(t, cfg.Seed.Strict)
	assert.Empty(t, cfg.Seed.Path)
	assert.Equal(t, "zero", cfg.Mood.MissingSamples)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
logging:
  level: debug
  format: json
mood:
  missing_samples: skip
security:
  bcrypt_cost: 10
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("BCRYPT_COST", "11")
	t.Setenv("SEED_STRICT", "false")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.PrettyLogs())
	assert.Equal(t, "skip", cfg.Mood.MissingSamples)
	assert.Equal(t, 11, cfg.Security.BcryptCost)
	assert.False(t, cfg.Seed.Strict)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad policy", env: map[string]string{"MOOD_MISSING_SAMPLES": "average"}},
		{name: "bad format", env: map[string]string{"LOG_FORMAT": "xml"}},
		{name: "cost too low", env: map[string]string{"BCRYPT_COST": "1"}},
		{name: "not a number", env: map[string]string{"BCRYPT_COST": "twelve"}},
		{name: "missing seed file", env: map[string]string{"SEED_PATH": "/nonexistent/seed.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig("")
			assert.Error(t, err)
		})
	}
}
