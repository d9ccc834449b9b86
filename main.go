package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"shooter/app"
	"shooter/game"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ebiten.SetWindowTitle("Shooter")
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	if err := ebiten.RunGame(app.New(cfg)); err != nil {
		slog.Error("game exited", "err", err)
		os.Exit(1)
	}
}
