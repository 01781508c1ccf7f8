package cmd

import (
	"github.com/huangsam/consta/internal/contract"
	"github.com/huangsam/consta/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the consta MCP server",
	Long:  `Launch an MCP server that allows AI agents to summarize contribution activity via standard tools.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Repository paths arrive with each tool call, so only shared inputs are validated.
		if err := loadInputs(); err != nil {
			return err
		}
		if err := contract.ProcessSharedInputs(cfg, input); err != nil {
			return err
		}
		applyRuntimeSettings()
		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, contract.NewLocalGitClient())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
