package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sdlbase/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List available platform backends",
	Long:  `Shows every platform backend compiled into this binary.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range backends {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, b := range backends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}

	fmt.Println()
	fmt.Println("Run 'sdlbase run --backend <id>' to use one.")
}
