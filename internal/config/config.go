package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "fbrowse"

// DefaultSkin is the skin whose directories back every other skin.
const DefaultSkin = "Default"

type Config struct {
	Root            string   `koanf:"root"`   // starting directory when none is given
	Filter          string   `koanf:"filter"` // comma separated extensions
	ShowDirectories bool     `koanf:"show_directories"`
	ShowParent      bool     `koanf:"show_parent"`
	ShowFiles       bool     `koanf:"show_files"`
	Exclude         []string `koanf:"exclude"` // glob patterns matched against names

	// Wallpaper roots are <skin_dir>/<skin>/wallpapers.
	Skin     string   `koanf:"skin"`
	SkinDirs []string `koanf:"skin_dirs"`

	LogLevel string `koanf:"log_level"`
	LogFile  string `koanf:"log_file"`

	// Theme maps color slots (selection_bg, directory_fg, ...) to tcell color names.
	Theme map[string]string `koanf:"theme"`

	// Keys maps button names to lists of key names, e.g. accept = ["Enter", "l"].
	Keys map[string][]string `koanf:"keys"`
}

// Default returns the configuration used when no file sets a key.
func Default() *Config {
	root := xdg.Home
	if root == "" {
		root = "/"
	}
	return &Config{
		Root:            root,
		ShowDirectories: true,
		ShowParent:      true,
		ShowFiles:       true,
		Skin:            DefaultSkin,
		SkinDirs:        defaultSkinDirs(),
		LogLevel:        "info",
		LogFile:         defaultLogFile(),
	}
}

// Load reads the user config file, then ./fbrowse.toml, then extra (when
// non-empty). Later files override earlier ones. Missing default files are
// skipped; a missing extra file is an error.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}
	if extra != "" {
		if err := k.Load(file.Provider(extra), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", extra, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Root = expandPath(cfg.Root)
	cfg.LogFile = expandPath(cfg.LogFile)
	if len(cfg.SkinDirs) == 0 {
		cfg.SkinDirs = defaultSkinDirs()
	}
	for i, dir := range cfg.SkinDirs {
		cfg.SkinDirs[i] = expandPath(dir)
	}
	if strings.TrimSpace(cfg.Skin) == "" {
		cfg.Skin = DefaultSkin
	}
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/fbrowse/config.toml
	if path, err := xdg.SearchConfigFile(filepath.Join(appName, "config.toml")); err == nil {
		paths = append(paths, path)
	}

	// 2. ./fbrowse.toml
	paths = append(paths, appName+".toml")

	return paths
}

func defaultSkinDirs() []string {
	dirs := make([]string, 0, len(xdg.DataDirs)+1)
	if xdg.DataHome != "" {
		dirs = append(dirs, filepath.Join(xdg.DataHome, appName, "skins"))
	}
	for _, dir := range xdg.DataDirs {
		dirs = append(dirs, filepath.Join(dir, appName, "skins"))
	}
	return dirs
}

func defaultLogFile() string {
	if xdg.StateHome == "" {
		return ""
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
