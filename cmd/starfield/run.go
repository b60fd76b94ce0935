package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfield/internal/angle"
	"github.com/vovakirdan/starfield/internal/config"
	"github.com/vovakirdan/starfield/internal/gfx"
	"github.com/vovakirdan/starfield/internal/loop"
	"github.com/vovakirdan/starfield/internal/starfield"
	"github.com/vovakirdan/starfield/internal/vec"
)

var flagFrames int

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the starfield",
	Long: `Open a window and fly through the starfield until the window is closed.

Controls (terminal backends):
  Q/Esc/Ctrl+C - Quit

The exit status is always 0; setup failures are logged.

Examples:
  starfield run
  starfield run --seed 42
  starfield run --backend headless --frames 500
  starfield run --config ./my-starfield.yaml`,
	Run: runStarfield,
}

func init() {
	runCmd.Flags().IntVar(&flagFrames, "frames", 0, "Stop after N frames (0 = config value)")
}

func runStarfield(cmd *cobra.Command, args []string) {
	logger, closer := newLogger()
	defer closer.Close()

	for _, line := range angle.FormatConversions() {
		fmt.Println(line)
	}
	for _, line := range vec.Diagnostics() {
		fmt.Println(line)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}
	if flagFrames > 0 {
		cfg.Loop.MaxFrames = flagFrames
	}

	backend, err := createBackend(flagBackend)
	if err != nil {
		logger.Error("backend unavailable", "error", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := resolveSeed(flagSeed)
	logger.Debug("starting", "backend", backend.Name(), "seed", seed)

	stats, err := fly(ctx, backend, cfg, seed, logger)
	if err != nil {
		reportSetup(logger, err)
		return
	}
	logger.Info("starfield stopped",
		"frames", stats.Frames,
		"points", stats.Points,
		"draw_errors", stats.DrawErrors,
	)
}

// fly sets up the window, renderer and icon on backend and runs the render
// loop until it stops. Resources are released in reverse order of creation,
// the subsystem last.
func fly(ctx context.Context, backend gfx.Backend, cfg config.StarfieldConfig, seed int64, logger *log.Logger) (loop.Stats, error) {
	var stats loop.Stats

	bg, fg, err := cfg.Colors.Palette()
	if err != nil {
		return stats, err
	}
	rt := cfg.Runtime(seed)

	err = gfx.Run(backend, gfx.FlagEverything, func(gc *gfx.Context) error {
		window, err := gc.CreateWindow(cfg.Window.Title, rt.ScreenW, rt.ScreenH)
		if err != nil {
			return err
		}
		defer func() {
			if err := window.Destroy(); err != nil {
				logger.Warn("window destroy failed", "error", err)
			}
		}()

		renderer, err := gc.CreateRenderer(window)
		if err != nil {
			return err
		}
		defer func() {
			if err := renderer.Destroy(); err != nil {
				logger.Warn("renderer destroy failed", "error", err)
			}
		}()

		if err := gc.LoadIcon(window, cfg.Icon); err != nil {
			return err
		}

		w, h := window.Size()
		sim := starfield.New(cfg.Simulation(), starfield.NewCamera(w, h), rand.New(rand.NewSource(rt.Seed)))
		sim.Initialize(cfg.Stars.Count)

		driver := loop.New(loop.Options{
			Events:     backend,
			Renderer:   renderer,
			Simulator:  sim,
			Background: bg,
			Foreground: fg,
			FrameDelay: rt.FrameDelay,
			MaxFrames:  rt.MaxFrames,
			Logger:     logger,
		})
		stats = driver.Run(ctx)
		logger.Debug("render loop finished", "state", driver.State())
		return nil
	})
	return stats, err
}

// reportSetup logs a setup failure. Failures never change the exit status.
func reportSetup(logger *log.Logger, err error) {
	if err == nil {
		return
	}
	var initErr *gfx.InitError
	if errors.As(err, &initErr) {
		logger.Error("initialization failed", "op", initErr.Op, "error", initErr.Msg)
		return
	}
	logger.Error("setup failed", "error", err)
}
