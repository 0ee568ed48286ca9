package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/postboard/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server exposing the posts API to AI agents",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio with list_posts and get_post tools backed by the configured API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Stdout carries the protocol.
		log.SetOutput(os.Stderr)
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "postboard MCP server started on stdio (api=%s)\n", cfg.API.BaseURL)

		srv := mcpserver.NewServer(newFetcherFromConfig(cfg))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
