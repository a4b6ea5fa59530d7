package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/startuz/xoxide/internal/scenery"
	"github.com/startuz/xoxide/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Edit the load order interactively",
	Long: `Opens the interactive editor: browse the classified pack list,
multi-select packs and drop them elsewhere (they are auto-pinned to their
new tier), toggle pins, reorder by heuristics, and write the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		org, err := openOrganizer(cmd)
		if err != nil {
			return err
		}
		defer org.Close()

		packs, err := org.Scan(cmd.Context())
		if err != nil {
			return err
		}
		org.Order(packs)

		save := func(ordered []scenery.Pack) error {
			if err := org.WriteOrder(ordered, true); err != nil {
				return err
			}
			return org.SaveHeuristics()
		}

		model := tui.New(packs, org.Model, org.Regions, org.Context, save)
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
