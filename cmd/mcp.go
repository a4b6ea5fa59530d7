package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/startuz/xoxide/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve organizer tools over MCP",
	Long: `Starts an MCP server exposing list_packs, preview_order,
validate_order, and pin_pack over SSE/HTTP, so an assistant can inspect
and adjust the scenery order. Runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")

		org, err := openOrganizer(cmd)
		if err != nil {
			return err
		}
		defer org.Close()

		srv := mcpserver.NewServer(org, port)
		if err := srv.Start(cmd.Context()); err != nil {
			return err
		}
		defer srv.Stop(cmd.Context())

		fmt.Fprintf(os.Stderr, "mcp server listening on %s\n", srv.Addr())

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}

func init() {
	mcpCmd.Flags().Int("port", 8394, "port to listen on")
	rootCmd.AddCommand(mcpCmd)
}
