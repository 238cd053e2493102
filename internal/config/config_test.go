package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the xdg directories and the working directory at fresh
// temporary locations so no real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("HOME", base)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	t.Setenv("XDG_DATA_DIRS", "/usr/share")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	work := filepath.Join(base, "work")
	require.NoError(t, os.MkdirAll(work, 0o755))
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return base
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	base := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, base, cfg.Root)
	assert.True(t, cfg.ShowDirectories)
	assert.True(t, cfg.ShowParent)
	assert.True(t, cfg.ShowFiles)
	assert.Empty(t, cfg.Filter)
	assert.Empty(t, cfg.Exclude)
	assert.Equal(t, DefaultSkin, cfg.Skin)
	assert.Equal(t, []string{
		filepath.Join(base, "data", "fbrowse", "skins"),
		filepath.Join("/usr/share", "fbrowse", "skins"),
	}, cfg.SkinDirs)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join(base, "state", "fbrowse", "fbrowse.log"), cfg.LogFile)
}

func TestLoadUserConfig(t *testing.T) {
	base := isolate(t)
	writeFile(t, filepath.Join(base, "config", "fbrowse", "config.toml"), `
root = "~/music"
filter = "mp3,ogg"
show_parent = false
exclude = ["*.tmp", "lost+found"]
skin = "Night"
skin_dirs = ["~/skins"]

[theme]
selection_bg = "darkorange"

[keys]
accept = ["Enter", "x"]
`)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "music"), cfg.Root)
	assert.Equal(t, "mp3,ogg", cfg.Filter)
	assert.False(t, cfg.ShowParent)
	assert.True(t, cfg.ShowDirectories)
	assert.Equal(t, []string{"*.tmp", "lost+found"}, cfg.Exclude)
	assert.Equal(t, "Night", cfg.Skin)
	assert.Equal(t, []string{filepath.Join(base, "skins")}, cfg.SkinDirs)
	assert.Equal(t, map[string]string{"selection_bg": "darkorange"}, cfg.Theme)
	assert.Equal(t, []string{"Enter", "x"}, cfg.Keys["accept"])
}

func TestLoadPrecedence(t *testing.T) {
	base := isolate(t)
	writeFile(t, filepath.Join(base, "config", "fbrowse", "config.toml"), `
filter = "png"
log_level = "debug"
`)
	writeFile(t, filepath.Join(base, "work", "fbrowse.toml"), `
filter = "jpg"
`)
	extra := filepath.Join(base, "extra.toml")
	writeFile(t, extra, `
show_files = false
`)

	cfg, err := Load(extra)
	require.NoError(t, err)

	assert.Equal(t, "jpg", cfg.Filter, "local file overrides user config")
	assert.Equal(t, "debug", cfg.LogLevel, "keys not overridden survive")
	assert.False(t, cfg.ShowFiles, "explicit file applies last")
}

func TestLoadExplicitFileMissing(t *testing.T) {
	base := isolate(t)

	_, err := Load(filepath.Join(base, "nope.toml"))
	require.Error(t, err)
}

func TestLoadInvalidToml(t *testing.T) {
	base := isolate(t)
	writeFile(t, filepath.Join(base, "work", "fbrowse.toml"), "filter = [\n")

	_, err := Load("")
	require.Error(t, err)
}

func TestLoadBlankSkinFallsBack(t *testing.T) {
	base := isolate(t)
	writeFile(t, filepath.Join(base, "work", "fbrowse.toml"), `skin = "  "`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSkin, cfg.Skin)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/music", filepath.Join(home, "music")},
		{"tilde only", "~", home},
		{"absolute path unchanged", "/usr/local/music", "/usr/local/music"},
		{"relative path unchanged", "music/albums", "music/albums"},
		{"empty string unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
}
