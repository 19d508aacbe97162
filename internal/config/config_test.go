package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/larynjahor/lifo/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(dir, "nope.yaml"))
		require.NoError(t, err)
		require.Equal(t, config.Config{}, cfg)
	})

	t.Run("full", func(t *testing.T) {
		path := filepath.Join(dir, "full.yaml")
		require.NoError(t, os.WriteFile(path, []byte("capacity: 64\nstrict: true\ndebug: true\n"), 0o644))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, config.Config{Capacity: 64, Strict: true, Debug: true}, cfg)
	})

	t.Run("env expanded", func(t *testing.T) {
		path := filepath.Join(dir, "env.yaml")
		require.NoError(t, os.WriteFile(path, []byte("strict: true\n"), 0o644))

		t.Setenv("LIFO_TEST_DIR", dir)

		cfg, err := config.Load("$LIFO_TEST_DIR/env.yaml")
		require.NoError(t, err)
		require.True(t, cfg.Strict)
	})

	t.Run("negative capacity", func(t *testing.T) {
		path := filepath.Join(dir, "negative.yaml")
		require.NoError(t, os.WriteFile(path, []byte("capacity: -1\n"), 0o644))

		_, err := config.Load(path)
		require.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("capacity: [1, 2\n"), 0o644))

		_, err := config.Load(path)
		require.Error(t, err)
	})
}
