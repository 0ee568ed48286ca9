package cmd

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/browse"
	"github.com/ziadkadry99/postboard/internal/paging"
)

var (
	browsePage  int
	browseLimit int
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse posts interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Fetch failures are already shown on screen; keep the log off the prompt.
		if !verbose {
			log.SetOutput(io.Discard)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		b := browse.New(newFetcherFromConfig(cfg), nil, cmd.OutOrStdout())
		return b.Run(ctx, paging.State{Limit: browseLimit, Page: browsePage})
	},
}

func init() {
	browseCmd.Flags().IntVar(&browsePage, "page", paging.DefaultPage, "page to start on")
	browseCmd.Flags().IntVar(&browseLimit, "limit", paging.DefaultLimit, "posts per page")
	rootCmd.AddCommand(browseCmd)
}
