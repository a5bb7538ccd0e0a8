package main

import (
	"flag"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	session, err := game.NewSession(cfg.Rules, game.NewRandomPositions(cfg.Seed), game.SystemTime{}, logger)
	if err != nil {
		log.Fatalf("[APP] [FATAL] creating session: %v", err)
	}
	defer session.Close()

	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.FPS))

	renderer := ui.NewRenderer()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		session.Frame(ui.ReadInput())
		renderer.Draw(session)
	}
}
