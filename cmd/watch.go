package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/startuz/xoxide/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch Custom Scenery and re-lint on changes",
	Long: `Watches the Custom Scenery directory. When packs are installed,
removed, or the manifest changes, the installation is rescanned and the
current order re-linted. Runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		org, err := openOrganizer(cmd)
		if err != nil {
			return err
		}
		defer org.Close()

		w, err := watch.NewWatcher(org.Cfg.CustomSceneryDir())
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		defer w.Stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		fmt.Fprintf(os.Stderr, "watching %s\n", org.Cfg.CustomSceneryDir())
		for {
			select {
			case <-sig:
				return nil
			case change, ok := <-w.Changes:
				if !ok {
					return nil
				}
				log.Info("scenery changed", "pack", change.Name)

				packs, err := org.Scan(cmd.Context())
				if err != nil {
					log.Error("rescan failed", "err", err)
					continue
				}
				report := org.Lint(packs)
				if len(report.Issues) == 0 {
					log.Info("order clean", "packs", len(packs))
					continue
				}
				for _, is := range report.Issues {
					log.Warn(is.Message, "severity", is.Severity, "type", is.Type)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
