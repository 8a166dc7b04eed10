package config

import (
	"os"
	"path/filepath"
	"testing"

	"gamepack/games/mancala"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), c)
		require.Equal(t, 8, c.Goroutines)
		require.Equal(t, 150, c.Matches)
		require.Equal(t, 300, c.MaxPlies)
	})

	t.Run("reading a file over the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"variant: Mancala\nmatches: 20\nmancala:\n  seeds: 3\n  houses: 5\n  emptyCapture: true\n"), 0644))
		c, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "Mancala", c.Variant)
		require.Equal(t, 20, c.Matches)
		require.Equal(t, 8, c.Goroutines, "Missing keys keep their defaults")
		require.Equal(t, mancala.Params{Seeds: 3, Houses: 5, EmptyCapture: true, CountRemainingSeeds: true}, c.Mancala)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("GAMEPACK_GOROUTINES", "2")
		t.Setenv("GAMEPACK_VARIANT", "Chess")
		t.Setenv("GAMEPACK_MAX_PLIES", "not a number")
		c, err := Load("")
		require.NoError(t, err)
		require.Equal(t, 2, c.Goroutines)
		require.Equal(t, "Chess", c.Variant)
		require.Equal(t, 300, c.MaxPlies, "Malformed numbers keep the previous value")
	})

	t.Run("rejecting invalid settings", func(t *testing.T) {
		t.Setenv("GAMEPACK_VARIANT", "Go")
		_, err := Load("")
		require.Error(t, err)

		c := Default()
		c.Goroutines = 0
		require.Error(t, c.Validate())
	})

	t.Run("failing on unreadable files", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)

		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("matches: [1, 2"), 0644))
		_, err = Load(path)
		require.Error(t, err)
	})
}
