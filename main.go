package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	statePath := flag.String("state", "", "state file to load at startup")
	flag.Parse()

	cfg, err := LoadConfigOrDefault(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	g := NewGame(cfg)
	if *statePath != "" {
		if err := g.LoadState(*statePath); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
