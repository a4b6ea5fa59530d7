package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/startuz/xoxide/internal/config"
	"github.com/startuz/xoxide/internal/lint"
	"github.com/startuz/xoxide/internal/organizer"
)

// errCriticalIssues is returned (never os.Exit, which would skip deferred
// cleanup) when critical layering issues block an operation.
var errCriticalIssues = errors.New("critical layering issues remain")

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Compute the heuristic load order",
	Long: `Computes the full load order: classify, heal, score, and sort every
pack. Prints the result and any layering issues. With --write the order is
persisted back to scenery_packs.ini, grouped under score-band headers.`,
	RunE: runOrder,
}

func init() {
	orderCmd.Flags().Bool("write", false, "write the order to scenery_packs.ini")
	orderCmd.Flags().Bool("backup", true, "keep a timestamped backup when writing")
	rootCmd.AddCommand(orderCmd)
}

func runOrder(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")
	backup, _ := cmd.Flags().GetBool("backup")

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
	org.Order(packs)

	for i, p := range packs {
		fmt.Printf("%3d. [%3d] %s\n", i+1,
			org.Model.Predict(p.Name, p.Path, org.Context(p)), p.Name)
	}

	report := org.Lint(packs)
	printReport(report)

	if !write {
		return nil
	}
	if report.Worst() == lint.Critical {
		return fmt.Errorf("refusing to write: %w", errCriticalIssues)
	}
	if err := org.WriteOrder(packs, backup); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "✓ scenery_packs.ini written")
	return nil
}

func printReport(report lint.Report) {
	for _, is := range report.Issues {
		fmt.Fprintf(os.Stderr, "%s [%s] %s\n  fix: %s\n",
			is.Severity, is.Type, is.Message, is.FixSuggestion)
	}
}
