package config

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://localhost:8477", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	assert.True(t, cfg.Mock.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lorebook init")
}

func TestWriteAndLoad(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.API.BaseURL = "http://backend:9000"
	cfg.Mock.Enabled = false
	require.NoError(t, Write(dir, cfg))
	assert.True(t, Exists(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000", loaded.API.BaseURL)
	assert.False(t, loaded.Mock.Enabled)
	// Unset fields keep their defaults.
	assert.Equal(t, 30, loaded.API.TimeoutSeconds)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, Default()))

	t.Setenv("LOREBOOK_API_URL", "http://override:1234")
	t.Setenv("LOREBOOK_API_TOKEN", "secret")
	t.Setenv("LOREBOOK_MOCK_DATA", "off")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://override:1234", cfg.API.BaseURL)
	assert.Equal(t, "secret", cfg.API.Token)
	assert.False(t, cfg.Mock.Enabled)
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on "} {
		assert.True(t, parseBool(v), v)
	}
	for _, v := range []string{"0", "false", "no", "off", "junk"} {
		assert.False(t, parseBool(v), v)
	}
}

func TestWatcher_AppliesReloadedConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Mock.Enabled = true
	require.NoError(t, Write(dir, cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	applied := make(chan *Config, 4)
	watcher := NewWatcher(dir, zerolog.Nop())

	done := make(chan error, 1)
	go func() {
		done <- watcher.Run(ctx, func(c *Config) { applied <- c })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)

	cfg.Mock.Enabled = false
	require.NoError(t, Write(dir, cfg))

	select {
	case got := <-applied:
		assert.False(t, got.Mock.Enabled)
	case <-ctx.Done():
		t.Fatal("watcher did not apply the reloaded config")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	watcher := NewWatcher(t.TempDir()+"/nope", zerolog.Nop())

	err := watcher.Run(context.Background(), func(*Config) {})
	require.Error(t, err)
}
