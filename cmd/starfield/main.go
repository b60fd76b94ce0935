// starfield flies through a field of stars.
//
// Usage:
//
//	starfield angles     - Print the angle conversions
//	starfield run        - Run the starfield until quit
//	starfield backends   - List compiled-in backends
//
// Global flags:
//
//	--backend <name>     - Rendering backend (see 'starfield backends')
//	--config <path>      - Path to a custom config YAML
//	--seed <value>       - RNG seed for a reproducible field (0 = time based)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfield/internal/gfx"
	"github.com/vovakirdan/starfield/internal/registry"

	// Import backends to register them
	_ "github.com/vovakirdan/starfield/internal/platform/cell"
	_ "github.com/vovakirdan/starfield/internal/platform/headless"
	_ "github.com/vovakirdan/starfield/internal/platform/tui"
)

var (
	// Global flags
	flagBackend  string
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfield",
	Short: "Starfield - fly through a field of stars",
	Long: `Starfield projects a field of 3D points onto the screen every frame,
giving the impression of flying through space.

Available commands:
  angles    - Print degree/radian conversions
  run       - Open a window and run the starfield
  backends  - Show compiled-in rendering backends

Examples:
  starfield run
  starfield run --backend cell --seed 42
  starfield run --backend headless --frames 100
  starfield angles`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", defaultBackend, "Rendering backend")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(anglesCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(backendsCmd)
}

// newLogger builds the process logger from the global flags.
// The returned closer releases the log file, if any.
func newLogger() (*log.Logger, io.Closer) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w, closer = f, f
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "starfield",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger, closer
}

// createBackend instantiates the named backend, listing the available ones
// when the name is unknown.
func createBackend(name string) (gfx.Backend, error) {
	if !registry.Exists(name) {
		names := make([]string, 0)
		for _, b := range registry.List() {
			names = append(names, b.Name)
		}
		return nil, fmt.Errorf("unknown backend %q (available: %s)", name, strings.Join(names, ", "))
	}
	return registry.Create(name)
}

// resolveSeed returns seed, or a time-based seed when it is zero.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
