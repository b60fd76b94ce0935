package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfield/internal/angle"
	"github.com/vovakirdan/starfield/internal/gfx"
)

var anglesCmd = &cobra.Command{
	Use:   "angles",
	Short: "Print degree/radian conversions",
	Long: `Initializes the video subsystem of the selected backend and prints
the conversions of a full turn to radians and of one radian to degrees.`,
	Run: runAngles,
}

func runAngles(cmd *cobra.Command, args []string) {
	logger, closer := newLogger()
	defer closer.Close()

	backend, err := createBackend(flagBackend)
	if err != nil {
		logger.Error("backend unavailable", "error", err)
		return
	}

	reportSetup(logger, printAngles(os.Stdout, backend))
}

// printAngles writes the conversion lines to w while the video subsystem
// of backend is up.
func printAngles(w io.Writer, backend gfx.Backend) error {
	return gfx.Run(backend, gfx.FlagVideo, func(*gfx.Context) error {
		for _, line := range angle.FormatConversions() {
			fmt.Fprintln(w, line)
		}
		return nil
	})
}
