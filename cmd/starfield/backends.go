package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfield/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List all available rendering backends",
	Long:  `Shows every backend compiled into this binary.`,
	Run:   runBackends,
}

var headingStyle = lipgloss.NewStyle().Bold(true)

func runBackends(cmd *cobra.Command, args []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println(headingStyle.Render("Available backends:"))
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, b := range backends {
		marker := ""
		if b.Name == defaultBackend {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxNameLen, b.Name, b.Description, marker)
	}

	fmt.Println()
	fmt.Println("Run 'starfield run --backend <name>' to use one.")
}
