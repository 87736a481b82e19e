package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ".poker-trainer", cfg.DataDir)
	assert.Equal(t, "file", cfg.Storage)
	assert.Equal(t, int64(5242880), cfg.QuotaBytes)
	assert.Equal(t, 10, cfg.DrillLength)
	assert.Equal(t, uint64(0), cfg.Seed)

	l, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("TRAINER_STORAGE", "sqlite")
	t.Setenv("TRAINER_DRILL_LENGTH", "50")
	t.Setenv("TRAINER_LOG_LEVEL", "DEBUG")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage)
	assert.Equal(t, 50, cfg.DrillLength)
	l, _ := cfg.Level()
	assert.Equal(t, slog.LevelDebug, l)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TRAINER_SEED=99\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TRAINER_SEED") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), cfg.Seed)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"TRAINER_STORAGE":      "redis",
		"TRAINER_DRILL_LENGTH": "0",
		"TRAINER_LOG_LEVEL":    "loud",
		"TRAINER_QUOTA_BYTES":  "-1",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestUsage(t *testing.T) {
	u, err := Usage()
	require.NoError(t, err)
	assert.Contains(t, u, "TRAINER_STORAGE")
}
