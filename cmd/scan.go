package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/startuz/xoxide/internal/config"
	"github.com/startuz/xoxide/internal/organizer"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Discover and classify every scenery pack",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		org, err := organizer.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer org.Close()

		packs, err := org.Scan(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SCORE\tCATEGORY\tSTATUS\tREGION\tNAME")
		for _, p := range packs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				org.Model.Predict(p.Name, p.Path, org.Context(p)),
				p.Category, p.Status, p.Region, p.Name)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
