package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tile-survivor/audio"
	"github.com/lixenwraith/tile-survivor/config"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/render"
)

// newScreen is swapped in tests to exercise startup failures
var newScreen = tcell.NewScreen

func main() {
	os.Exit(run(os.Args[1:]))
}

// run starts the game and returns the process exit code
// Startup failures return instead of exiting so deferred cleanup runs
func run(args []string) int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := flag.NewFlagSet("survivor", flag.ContinueOnError)
	configFlag := flags.String("config", "", "Path to YAML config, defaults when empty")
	seedFlag := flags.Uint64("seed", 0, "Override the map seed")
	debugFlag := flags.Bool("debug", false, "Enable debug logging to the log file")
	muteFlag := flags.Bool("mute", false, "Disable audio")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Log.Enabled = true
		cfg.Log.Level = "debug"
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	logger := logrus.New()
	logFile, err := setupLogging(logger, cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	var sounds *audio.SoundManager
	if cfg.Audio.Enabled {
		sounds = audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			logger.WithError(err).Warn("audio unavailable, continuing without sound")
		}
		defer sounds.Cleanup()
	}

	screen, err := newScreen()
	if err != nil {
		logger.WithError(err).Error("create screen failed")
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		logger.WithError(err).Error("initialize screen failed")
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		return 1
	}
	core.SetCrashReset(screen.Fini)
	// Normal exit terminal cleanup
	defer func() {
		core.SetCrashReset(nil)
		screen.Fini()
	}()

	var player render.SoundPlayer
	if sounds != nil {
		player = sounds
	}
	g, err := newGame(cfg, screen, player, logger)
	if err != nil {
		logger.WithError(err).Error("start failed")
		return 1
	}

	frameTicker := time.NewTicker(cfg.TickInterval())
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !g.handleKey(ev) {
					logger.Info("quit")
					return 0
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			g.step()
		}
	}
}
