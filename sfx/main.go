//go:build !js
// +build !js

// Command sfx previews and exports the game's synthesized sound effects.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/simukka/pop-bubbles/audio"
	"github.com/simukka/pop-bubbles/common"
)

type eventFlags struct {
	velocity float64
	pitch    float64
	perfect  bool
	seed     uint32
	rate     int
	volume   float64
}

func (f *eventFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.velocity, "velocity", 1, "pop velocity (0-1)")
	cmd.Flags().Float64Var(&f.pitch, "pitch", 0.5, "pop pitch hint (0-1)")
	cmd.Flags().BoolVar(&f.perfect, "perfect", false, "add the perfect-hit sparkle to a pop")
	cmd.Flags().Uint32Var(&f.seed, "seed", 1, "noise seed")
	cmd.Flags().IntVar(&f.rate, "rate", audio.AudioConfig.SampleRate, "sample rate")
	cmd.Flags().Float64Var(&f.volume, "volume", audio.AudioConfig.MasterVolume, "master volume (0-1)")
}

// render synthesizes the named event.
func (f *eventFlags) render(name string) ([]float32, *audio.Graph, error) {
	kind, err := audio.ParseEventKind(name)
	if err != nil {
		return nil, nil, err
	}
	ev := audio.Event{Kind: kind}
	if kind == audio.EventPop {
		ev = audio.PopEvent(f.velocity, f.pitch, f.perfect)
	}
	graph, err := audio.BuildGraph(ev, common.NewSeededRNG(f.seed))
	if err != nil {
		return nil, nil, err
	}
	return audio.Render(graph, f.rate, f.volume), graph, nil
}

func eventNames() string {
	names := make([]string, 0, 5)
	for k := audio.EventPop; k <= audio.EventGameOver; k++ {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func renderCmd(logger *log.Logger) *cobra.Command {
	var flags eventFlags
	var out string

	cmd := &cobra.Command{
		Use:   "render <event>",
		Short: "Write an effect to a WAV file",
		Long:  "Write an effect to a WAV file. Events: " + eventNames(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, _, err := flags.render(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = args[0] + ".wav"
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()
			if err := audio.EncodeWAV(f, samples, flags.rate); err != nil {
				return err
			}
			logger.Info("effect rendered", "event", args[0], "file", out, "samples", len(samples))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <event>.wav)")
	return cmd
}

func playCmd(logger *log.Logger) *cobra.Command {
	var flags eventFlags

	cmd := &cobra.Command{
		Use:   "play <event>",
		Short: "Play an effect on the default output device",
		Long:  "Play an effect on the default output device. Events: " + eventNames(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, graph, err := flags.render(args[0])
			if err != nil {
				return err
			}
			backend, err := audio.NewSpeakerBackend(flags.rate)
			if err != nil {
				return err
			}
			defer backend.Close()

			if err := backend.Play(samples, flags.rate); err != nil {
				return err
			}
			logger.Info("playing", "event", args[0], "duration", graph.Duration())
			time.Sleep(time.Duration((graph.Duration() + 0.2) * float64(time.Second)))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func main() {
	logger := common.NewCLILogger(os.Stderr, "sfx", common.GetEnv("POP_LOG_LEVEL", "info"))

	root := &cobra.Command{
		Use:           "sfx",
		Short:         "Preview and export Pop! Bubbles sound effects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(renderCmd(logger), playCmd(logger))

	if err := root.Execute(); err != nil {
		logger.Error("sfx failed", "err", err)
		os.Exit(1)
	}
}
