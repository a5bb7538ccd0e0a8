package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/term"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "", "Write game logs to this file")
	hold := flag.Duration("hold", term.DefaultHoldWindow, "How long a key press counts as held")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The screen owns stdout, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut, "", log.LstdFlags)

	session, err := game.NewSession(cfg.Rules, game.NewRandomPositions(cfg.Seed), game.SystemTime{}, logger)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	defer session.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	renderer := term.NewRenderer(screen)
	keys := term.NewKeyState(*hold)

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if keys.Handle(e, time.Now()) {
					return nil
				}
			}
		case now := <-ticker.C:
			session.Frame(keys.Input(now))
			renderer.Draw(session)
		}
	}
}
