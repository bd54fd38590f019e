package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottkirkwood/blobposter/config"
	"github.com/scottkirkwood/blobposter/scene"
)

// parse registers poster flags on a throwaway command and parses args.
func parse(t *testing.T, args ...string) (scene.Params, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var f posterFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return f.params(cmd)
}

func TestParamsDefaults(t *testing.T) {
	p, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, scene.DefaultParams(scene.StyleA), p)

	p, err = parse(t, "--style", "b")
	require.NoError(t, err)
	assert.Equal(t, scene.DefaultParams(scene.StyleB), p)
}

func TestParamsFlags(t *testing.T) {
	p, err := parse(t, "--blobs", "3", "--hearts", "0", "--wobble", "0.8", "--seed", "7", "--width", "10")
	require.NoError(t, err)
	assert.Equal(t, 3, p.NBlobs)
	assert.Equal(t, 0, p.NHearts)
	assert.Equal(t, 0.8, p.Wobble)
	require.NotNil(t, p.Seed)
	assert.Equal(t, int64(7), *p.Seed)
	assert.Equal(t, scene.Size{W: 10, H: 8}, p.FigSize)
}

func TestParamsNoSeed(t *testing.T) {
	p, err := parse(t, "--seed", "none")
	require.NoError(t, err)
	assert.Nil(t, p.Seed)
	assert.False(t, seedFor(p).IsFixed())
}

func TestParamsConfigThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("blobs: 4\nhearts: 2\nseed: 99\n"), 0o644))

	p, err := parse(t, "--config", path, "--hearts", "7")
	require.NoError(t, err)
	assert.Equal(t, 4, p.NBlobs, "from the file")
	assert.Equal(t, 7, p.NHearts, "flag given explicitly wins")
	assert.Equal(t, int64(99), *p.Seed)
}

func TestParamsStyleFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("style: b\n"), 0o644))

	p, err := parse(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, scene.DefaultParams(scene.StyleB), p)

	p, err = parse(t, "--config", path, "--style", "a")
	require.NoError(t, err)
	assert.Equal(t, scene.DefaultParams(scene.StyleA), p, "explicit --style wins, with its own defaults")
}

func TestParamsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad style", []string{"--style", "c"}},
		{"bad seed", []string{"--seed", "abc"}},
		{"too many blobs", []string{"--blobs", "21"}},
		{"wobble out of range", []string{"--wobble", "1.5"}},
		{"missing config", []string{"--config", "/does/not/exist.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			assert.Error(t, err)
		})
	}

	_, err := parse(t, "--blobs", "0")
	assert.ErrorIs(t, err, config.ErrInvalidParams)
}

func TestDescribe(t *testing.T) {
	p := scene.DefaultParams(scene.StyleB)
	assert.Equal(t, "style B, 9 blobs, 12 hearts, seed 123", describe(p))
	p.Seed = nil
	assert.Equal(t, "style B, 9 blobs, 12 hearts, seed none", describe(p))
}
