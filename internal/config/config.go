package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	QuitConfirmTimes int `toml:"quit-confirm-times"`
	MessageTimeout   int `toml:"message-timeout"` // seconds
}

type Theme struct {
	Foreground              string `toml:"foreground"`
	Background              string `toml:"background"`
	StatuslineForeground    string `toml:"statusline-foreground"`
	StatuslineBackground    string `toml:"statusline-background"`
	SearchMatchForeground   string `toml:"search-foreground"`
	SearchMatchBackground   string `toml:"search-background"`
	SelectedMatchForeground string `toml:"selected-match-foreground"`
	SelectedMatchBackground string `toml:"selected-match-background"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			QuitConfirmTimes: 3,
			MessageTimeout:   5,
		},
		Theme: Theme{
			Foreground:              "#B3B1AD",
			Background:              "#0A0E14",
			StatuslineForeground:    "#0A0E14",
			StatuslineBackground:    "#B3B1AD",
			SearchMatchForeground:   "#000000",
			SearchMatchBackground:   "#FFD700",
			SelectedMatchForeground: "#000000",
			SelectedMatchBackground: "#87CEEB",
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Editor.QuitConfirmTimes > 0 {
		cfg.Editor.QuitConfirmTimes = userCfg.Editor.QuitConfirmTimes
	}
	if userCfg.Editor.MessageTimeout > 0 {
		cfg.Editor.MessageTimeout = userCfg.Editor.MessageTimeout
	}
	if userCfg.Theme.Foreground != "" {
		cfg.Theme.Foreground = userCfg.Theme.Foreground
	}
	if userCfg.Theme.Background != "" {
		cfg.Theme.Background = userCfg.Theme.Background
	}
	if userCfg.Theme.StatuslineForeground != "" {
		cfg.Theme.StatuslineForeground = userCfg.Theme.StatuslineForeground
	}
	if userCfg.Theme.StatuslineBackground != "" {
		cfg.Theme.StatuslineBackground = userCfg.Theme.StatuslineBackground
	}
	if userCfg.Theme.SearchMatchForeground != "" {
		cfg.Theme.SearchMatchForeground = userCfg.Theme.SearchMatchForeground
	}
	if userCfg.Theme.SearchMatchBackground != "" {
		cfg.Theme.SearchMatchBackground = userCfg.Theme.SearchMatchBackground
	}
	if userCfg.Theme.SelectedMatchForeground != "" {
		cfg.Theme.SelectedMatchForeground = userCfg.Theme.SelectedMatchForeground
	}
	if userCfg.Theme.SelectedMatchBackground != "" {
		cfg.Theme.SelectedMatchBackground = userCfg.Theme.SelectedMatchBackground
	}
	return cfg, nil
}

// ConfigDir returns the quill config directory
func ConfigDir() (string, error) {
	if v := os.Getenv("QUILL_CONFIG_HOME"); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "quill"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "quill"), nil
}

// ConfigPath returns the path to config.toml
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
