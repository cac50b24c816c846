//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"cannon/internal/app"
	"cannon/internal/audio"
	"cannon/internal/game"
	"cannon/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	rules := cfg.Game()
	if rules.Seed == 0 {
		rules.Seed = time.Now().UnixNano()
	}

	var sounds audio.Player = audio.Silent{}
	if !cfg.Mute {
		bank, err := audio.NewBank(cfg.Volume)
		if err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			sounds = bank
		}
	}

	dialog := ui.NewDialog()
	g := game.New(rules, game.WithDialog(dialog), game.WithSounds(sounds))
	a := app.New(g, dialog, cfg.HUD)

	ebiten.SetWindowTitle("Cannon Game")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
