package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/startuz/xoxide/internal/config"
	"github.com/startuz/xoxide/internal/lint"
	"github.com/startuz/xoxide/internal/organizer"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check the current load order for layering problems",
	Long: `Validates the load order as it stands in scenery_packs.ini, without
reordering anything. Exits non-zero when a critical issue is found.`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
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

	report := org.Lint(packs)
	if len(report.Issues) == 0 {
		fmt.Println("✓ no layering issues found")
		return nil
	}

	for _, is := range report.Issues {
		fmt.Printf("%s [%s] %s\n  fix: %s\n  why: %s\n",
			is.Severity, is.Type, is.Message, is.FixSuggestion, is.Details)
	}
	if report.Worst() == lint.Critical {
		return errCriticalIssues
	}
	return nil
}
