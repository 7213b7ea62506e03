package backend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rwall/internal/config"
)

// fakeProgram writes an executable script that records its argv, one per line.
func fakeProgram(t *testing.T, dir, name string, exitCode int) (record string) {
	t.Helper()
	record = filepath.Join(dir, name+".args")
	script := "#!/bin/sh\n" +
		"for a in \"$@\"; do printf '%s\\n' \"$a\"; done > '" + record + "'\n" +
		"echo boom >&2\n" +
		"exit " + string(rune('0'+exitCode)) + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(script), 0755))
	return record
}

func TestSetWallpaperFehArgv(t *testing.T) {
	// Arrange: a fake feh first on PATH
	bin := t.TempDir()
	record := fakeProgram(t, bin, "feh", 0)
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	s := NewSetter(&config.Config{PreferredBackend: config.BackendFeh})
	path := `/home/u/my "best" wall's.jpg`

	// Act
	err := s.SetWallpaper(path)

	// Assert: the path arrives as a single, untouched argument
	require.NoError(t, err)
	got, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, "--bg-scale\n"+path+"\n", string(got))
}

func TestSetWallpaperDefaultsToFeh(t *testing.T) {
	bin := t.TempDir()
	record := fakeProgram(t, bin, "feh", 0)
	t.Setenv("PATH", bin)

	require.NoError(t, NewSetter(&config.Config{}).SetWallpaper("/tmp/a.jpg"))

	assert.FileExists(t, record)
}

func TestSetWallpaperNonZeroExit(t *testing.T) {
	bin := t.TempDir()
	fakeProgram(t, bin, "feh", 3)
	t.Setenv("PATH", bin)

	err := NewSetter(&config.Config{}).SetWallpaper("/tmp/a.jpg")

	assert.ErrorIs(t, err, ErrApplyFailed)
	assert.Contains(t, err.Error(), "boom")
}

func TestSetWallpaperMissingProgram(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	err := NewSetter(&config.Config{}).SetWallpaper("/tmp/a.jpg")

	assert.ErrorIs(t, err, ErrApplyFailed)
}

func TestSetWallpaperCustomCommand(t *testing.T) {
	bin := t.TempDir()
	record := fakeProgram(t, bin, "setbg", 0)
	s := NewSetter(&config.Config{
		PreferredBackend: config.BackendCustom,
		CustomCommand:    filepath.Join(bin, "setbg") + " --zoom file=%f",
	})

	require.NoError(t, s.SetWallpaper("/pics/with space.png"))

	got, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, "--zoom\nfile=/pics/with space.png\n", string(got))
}

func TestSetWallpaperRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		path string
	}{
		{"empty path", config.Config{}, ""},
		{"unknown backend", config.Config{PreferredBackend: "xsetroot"}, "/a.jpg"},
		{"empty custom command", config.Config{PreferredBackend: config.BackendCustom}, "/a.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := NewSetter(&cfg).SetWallpaper(tt.path)
			assert.ErrorIs(t, err, ErrApplyFailed)
		})
	}
}

func TestSetWallpaperHyprpaper(t *testing.T) {
	bin := t.TempDir()
	record := fakeProgram(t, bin, "hyprctl", 0)
	t.Setenv("PATH", bin)
	s := NewSetter(&config.Config{PreferredBackend: config.BackendHyprpaper})

	require.NoError(t, s.SetWallpaper("/w/my wall.png"))

	// The record holds the last invocation: the wallpaper assignment.
	got, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, "hyprpaper\nwallpaper\n,/w/my wall.png\n", string(got))
}
