package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Width != 1280 || cfg.UI.Height != 720 {
		t.Fatalf("default window size = %dx%d", cfg.UI.Width, cfg.UI.Height)
	}
	if cfg.UI.MainColor != "#00A4DC" {
		t.Fatalf("default main color = %q", cfg.UI.MainColor)
	}
	if cfg.Keybinds.PlayPause != "Space" {
		t.Fatalf("default play/pause key = %q", cfg.Keybinds.PlayPause)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "playbar", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "[server]\nurl = \"https://media.example.com\"\n\n[ui]\nmain_color = \"#FF5500\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.URL != "https://media.example.com" {
		t.Fatalf("server url = %q", cfg.Server.URL)
	}
	if cfg.UI.MainColor != "#FF5500" {
		t.Fatalf("main color = %q", cfg.UI.MainColor)
	}
	// Sections absent from the file keep their defaults
	if cfg.Playback.Volume != 100 {
		t.Fatalf("volume = %d, want default 100", cfg.Playback.Volume)
	}
	if cfg.Keybinds.Quit != "Q" {
		t.Fatalf("quit key = %q, want default Q", cfg.Keybinds.Quit)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Server.URL = "https://media.example.com"
	cfg.Server.Token = "abc123"
	cfg.UI.Fullscreen = true

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Server.URL != cfg.Server.URL || got.Server.Token != cfg.Server.Token {
		t.Fatalf("server config did not round-trip: %+v", got.Server)
	}
	if !got.UI.Fullscreen {
		t.Fatalf("fullscreen flag did not round-trip")
	}
}
