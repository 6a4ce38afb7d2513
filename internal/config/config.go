package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Playback PlaybackConfig `toml:"playback"`
	UI       UIConfig       `toml:"ui"`
	Keybinds KeybindConfig  `toml:"keybinds"`
}

type ServerConfig struct {
	URL      string `toml:"url"`
	Username string `toml:"username"`
	Token    string `toml:"token"`
	UserID   string `toml:"user_id"`
}

type PlaybackConfig struct {
	HWAccel string `toml:"hwdec"`
	Volume  int    `toml:"volume"`
}

type UIConfig struct {
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	MainColor  string `toml:"main_color"`
}

type KeybindConfig struct {
	PlayPause         string `toml:"play_pause"`
	SeekForward       string `toml:"seek_forward"`
	SeekBackward      string `toml:"seek_backward"`
	SeekForwardLarge  string `toml:"seek_forward_large"`
	SeekBackwardLarge string `toml:"seek_backward_large"`
	VolumeUp          string `toml:"volume_up"`
	VolumeDown        string `toml:"volume_down"`
	Mute              string `toml:"mute"`
	Fullscreen        string `toml:"fullscreen"`
	Quit              string `toml:"quit"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{},
		Playback: PlaybackConfig{
			HWAccel: "auto-safe",
			Volume:  100,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     720,
			MainColor:  "#00A4DC",
		},
		Keybinds: KeybindConfig{
			PlayPause:         "Space",
			SeekForward:       "Right",
			SeekBackward:      "Left",
			SeekForwardLarge:  "Up",
			SeekBackwardLarge: "Down",
			VolumeUp:          "0",
			VolumeDown:        "9",
			Mute:              "M",
			Fullscreen:        "F",
			Quit:              "Q",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "playbar"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file, falling back to defaults when it is missing.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
