package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"playbar/assets/icon"
	"playbar/internal/app"
	"playbar/internal/config"
	"playbar/internal/jellyfin"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  playbar <file-or-url>     play a local file or plain URL
  playbar -item <id>        stream an item from the configured Jellyfin server
`)
	flag.PrintDefaults()
}

func main() {
	itemID := flag.String("item", "", "Jellyfin item ID to stream")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var target string
	var client *jellyfin.Client

	switch {
	case *itemID != "":
		if cfg.Server.URL == "" || cfg.Server.Token == "" {
			log.Fatalf("-item requires server.url and server.token in the config")
		}
		client = jellyfin.NewClient(cfg.Server.URL)
		client.SetToken(cfg.Server.Token, cfg.Server.UserID)
	case flag.NArg() == 1:
		target = flag.Arg(0)
	default:
		usage()
		os.Exit(2)
	}

	game := app.NewGame(cfg, client, target, *itemID)

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("Playbar")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
