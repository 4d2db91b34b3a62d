package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lyra-docs/lyra/internal/content"
	"github.com/lyra-docs/lyra/internal/explainer"
	"github.com/lyra-docs/lyra/internal/logger"
	mcpserver "github.com/lyra-docs/lyra/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the documentation sections and the code explainer as tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Stdout carries the MCP protocol.
		logger.SetLogOutput(os.Stderr)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var exp *explainer.Explainer
		provider, err := createLLMProviderFromConfig(cmd.Context(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: explain_code disabled: %v\n", err)
		} else {
			history, closeHistory, err := openHistory(cfg)
			if err != nil {
				return err
			}
			defer closeHistory()
			exp = explainerFactory(cfg, provider, history)()
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "lyra MCP server started on stdio (sections=%d, explainer=%t)\n",
			content.Default().Len(), exp != nil)

		srv := mcpserver.NewServer(content.Default(), exp)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
