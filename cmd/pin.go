package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/startuz/xoxide/internal/config"
	"github.com/startuz/xoxide/internal/organizer"
)

var pinCmd = &cobra.Command{
	Use:   "pin <pack> <score>",
	Short: "Pin a pack to a fixed load-priority score",
	Long: `Pins the named pack to a score between 0 (loads first) and 100
(loads last). Pins bypass the rule cascade entirely and persist in the
active profile.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil || score > 100 {
			return fmt.Errorf("score must be an integer between 0 and 100, got %q", args[1])
		}

		org, err := openOrganizer(cmd)
		if err != nil {
			return err
		}
		defer org.Close()

		org.Model.Pin(args[0], uint8(score))
		if err := org.SaveHeuristics(); err != nil {
			return err
		}
		fmt.Printf("pinned %q at %d\n", args[0], score)
		return nil
	},
}

var unpinCmd = &cobra.Command{
	Use:   "unpin <pack>",
	Short: "Remove a pack's pinned score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		org, err := openOrganizer(cmd)
		if err != nil {
			return err
		}
		defer org.Close()

		org.Model.Unpin(args[0])
		if err := org.SaveHeuristics(); err != nil {
			return err
		}
		fmt.Printf("unpinned %q\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(unpinCmd)
}

// openOrganizer loads config and builds an organizer for simple commands.
func openOrganizer(cmd *cobra.Command) (*organizer.Organizer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return organizer.New(cmd.Context(), cfg)
}
