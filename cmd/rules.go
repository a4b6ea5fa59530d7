package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/startuz/xoxide/internal/heuristics"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect or reset the heuristic rule set",
}

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the profile's rules in evaluation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := openOrganizer(cmd)
			if err != nil {
				return err
			}
			defer org.Close()

			cfg := org.Model.Config()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tSCORE\tEXCL\tNAME\tKEYWORDS")
			for i, r := range cfg.Rules {
				excl := ""
				if r.IsExclusion {
					excl = "yes"
				}
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n", i+1, r.Score, excl, r.Name, strings.Join(r.Keywords, ", "))
			}
			fmt.Fprintf(w, "\tfallback score: %d\tpins: %d\n", cfg.FallbackScore, len(cfg.Overrides))
			return w.Flush()
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the shipped default rules, keeping pins",
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := openOrganizer(cmd)
			if err != nil {
				return err
			}
			defer org.Close()

			pins := org.Model.Config().Overrides
			cfg := heuristics.DefaultConfig()
			cfg.Overrides = heuristics.MergeOverrides(cfg.Overrides, pins)
			org.Model = heuristics.NewModel(cfg)
			if err := org.SaveHeuristics(); err != nil {
				return err
			}
			fmt.Println("rules reset to defaults")
			return nil
		},
	}

	rulesCmd.AddCommand(listCmd)
	rulesCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(rulesCmd)
}
