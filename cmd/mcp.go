package cmd

import (
	"time"

	"github.com/mbelabs/epiclog/internal/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the epiclog MCP server",
	Long:  `Launch an MCP server that allows AI agents to inspect and export EPIC logs via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The server defaults to today's logs when no date is given;
		// tools can override the date per call.
		if viper.GetString("date") == "" {
			viper.Set("date", time.Now().Format("2006-01-02"))
		}
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
