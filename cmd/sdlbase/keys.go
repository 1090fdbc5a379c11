package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long: `Display the key bindings of every backend.

When several arrows are held, only the first in the order
left, right, up, down moves the square.`,
	Args: cobra.NoArgs,
	Run:  runKeys,
}

// bindings lists key, action and the backends that support it.
var bindings = [][]string{
	{"Left", "Move left 2 px per update", "all"},
	{"Right", "Move right 2 px per update", "all"},
	{"Up", "Move up 2 px per update", "all"},
	{"Down", "Move down 2 px per update", "all"},
	{"Window close", "Quit", "sdl"},
	{"Esc / Ctrl+C", "Quit", "term"},
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	noteStyle   = lipgloss.NewStyle().Faint(true)
)

func runKeys(cmd *cobra.Command, args []string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Key", "Action", "Backend").
		Rows(bindings...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Println(t)
	fmt.Println(noteStyle.Render("Priority: left > right > up > down. Keys never combine diagonally."))
}
