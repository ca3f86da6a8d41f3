package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with the tick rate its config asks for.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeGameList(cmd.OutOrStdout())
	},
}

func writeGameList(w io.Writer) error {
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return nil
	}

	// Calculate column widths
	maxIDLen, maxTitleLen := len("ID"), len("Title")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Ticks/s")
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-------")

	for _, info := range games {
		game, err := registry.Create(info.ID)
		if err != nil {
			return fmt.Errorf("listing %s: %w", info.ID, err)
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %d\n", maxIDLen, info.ID, maxTitleLen, info.Title, game.TickRate())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'runner play [id]' to play; the id defaults to runner.")
	return nil
}
