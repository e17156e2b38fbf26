//go:build !js
// +build !js

// Command termgame plays Pop! Bubbles in a terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/simukka/pop-bubbles/audio"
	"github.com/simukka/pop-bubbles/common"
	"github.com/simukka/pop-bubbles/game"
	"github.com/simukka/pop-bubbles/storage"
	"github.com/simukka/pop-bubbles/term"
)

type options struct {
	seed       uint32
	difficulty string
	custom     game.CustomParams
	mute       bool
	dev        bool
	scoreFile  string
	logFile    string
	logLevel   string
}

func main() {
	opts := options{custom: game.DefaultCustomParams()}

	cmd := &cobra.Command{
		Use:           "termgame",
		Short:         "Play Pop! Bubbles in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.Uint32Var(&opts.seed, "seed", 0, "random seed (0 uses the clock)")
	f.StringVar(&opts.difficulty, "difficulty", "", "start immediately: easy, medium, hard, pro or custom")
	f.IntVar(&opts.custom.SpawnIntervalMs, "spawn-interval", opts.custom.SpawnIntervalMs, "custom: ms between spawns")
	f.IntVar(&opts.custom.MaxBubbles, "max-bubbles", opts.custom.MaxBubbles, "custom: active bubble cap")
	f.IntVar(&opts.custom.SizeMin, "size-min", opts.custom.SizeMin, "custom: minimum radius")
	f.IntVar(&opts.custom.SizeMax, "size-max", opts.custom.SizeMax, "custom: maximum radius")
	f.IntVar(&opts.custom.Speed, "speed", opts.custom.Speed, "custom: rise speed, px/s")
	f.IntVar(&opts.custom.Penalty, "penalty", opts.custom.Penalty, "custom: miss penalty points")
	f.BoolVar(&opts.mute, "mute", false, "start muted")
	f.BoolVar(&opts.dev, "dev", false, "show the FPS counter")
	f.StringVar(&opts.scoreFile, "score-file", "", "high score file (default under the user config dir)")
	f.StringVar(&opts.logFile, "log", "", "write logs to this file")
	f.StringVar(&opts.logLevel, "log-level", common.GetEnv("POP_LOG_LEVEL", "info"), "log level")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "termgame:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	// The terminal owns stdout and stderr while the game runs.
	var logOut io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := common.NewCLILogger(logOut, "termgame", opts.logLevel)

	custom, err := game.NewCustomProfile(opts.custom)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
	}
	rng := common.NewSeededRNG(seed)

	scorePath := opts.scoreFile
	if scorePath == "" {
		if scorePath, err = storage.DefaultPath(game.HighScoreKey); err != nil {
			return err
		}
	}

	backend, err := audio.NewSpeakerBackend(audio.AudioConfig.SampleRate)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	manager := audio.NewAudioManager(nil, common.NewSeededRNG(common.SessionSeed(seed, 0)))
	if backend != nil {
		manager.SetBackend(backend)
		defer backend.Close()
	}
	sounds := audio.NewQueue(manager, audio.AudioConfig.QueueDepth)
	defer sounds.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	app := term.New(screen, game.Options{
		Rand:    rng,
		Sound:   sounds,
		Store:   storage.NewFile(scorePath),
		DevMode: opts.dev,
	}, custom)
	app.Session().SetMuted(opts.mute)

	if opts.difficulty != "" {
		profile := custom
		if opts.difficulty != "custom" {
			if profile, err = game.ProfileByName(opts.difficulty); err != nil {
				return err
			}
		}
		if err := app.Session().Start(profile, 0); err != nil {
			return err
		}
	}

	logger.Info("session started", "seed", seed, "scores", scorePath)
	err = app.Run(ctx)
	if err == context.Canceled {
		err = nil
	}
	s := app.Session()
	logger.Info("session ended", "score", s.Score, "highScore", s.HighScore, "dropped", sounds.Dropped())
	return err
}
