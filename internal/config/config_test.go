package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/bestiary/internal/core/observability/log"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, log.LevelInfo, cfg.Level())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bestiary.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\ncatalog: monsters.yaml\n"), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "monsters.yaml", cfg.Catalog)
	assert.Equal(t, log.LevelDebug, cfg.Level())

	t.Setenv("BESTIARY_LOG_LEVEL", "error")
	cfg, err = Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, log.LevelError, cfg.Level())
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("BESTIARY_LOG_LEVEL", "chatty")
	_, err := Load(viper.New(), "")
	assert.ErrorContains(t, err, "log_level")

	_, err = Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
