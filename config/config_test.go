package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lookbusy1344/word24asm/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, 100, cfg.LoadBase)
	assert.Equal(t, 80, cfg.MaxSourceLine)
	assert.Equal(t, 31, cfg.MaxIdentifier)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_OverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "word24asm.toml")
	require.NoError(t, os.WriteFile(path, []byte("load_base = 200\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.LoadBase)
	assert.Equal(t, 80, cfg.MaxSourceLine, "fields absent from the file keep their default")
}

func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := config.Load("/nonexistent/word24asm.toml")
	assert.Error(t, err)
}
