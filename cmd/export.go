package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/paging"
	"github.com/ziadkadry99/postboard/internal/posts"
	"github.com/ziadkadry99/postboard/internal/progress"
)

var (
	exportOutput string
	exportFormat string
	exportLimit  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every post as JSON or YAML",
	Long:  `Walks the collection page by page and writes all posts to a file (or stdout with -o -).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if exportFormat != "json" && exportFormat != "yaml" {
			return fmt.Errorf("unknown format %q (want json or yaml)", exportFormat)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rep := progress.NewReporter(os.Stderr, "Exporting posts")
		all, err := exportPosts(ctx, newFetcherFromConfig(cfg), exportLimit, rep)
		if err != nil {
			return err
		}

		if exportOutput == "-" {
			return writeFormatted(cmd.OutOrStdout(), exportFormat, all)
		}
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOutput, err)
		}
		if err := writeFormatted(f, exportFormat, all); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", exportOutput, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported %d posts to %s\n", len(all), exportOutput)
		return nil
	},
}

// exportPosts collects the whole collection, reporting one step per page.
func exportPosts(ctx context.Context, f posts.Fetcher, limit int, rep progress.Reporter) ([]posts.Post, error) {
	all := []posts.Post{}
	started := false
	err := posts.Walk(ctx, f, limit, func(page int, p *posts.Page) error {
		if !started {
			total := progress.Unknown
			if p.Total.Known {
				total = paging.TotalPages(p.Total.Count, limit)
			}
			rep.Start(total)
			started = true
		}
		all = append(all, p.Posts...)
		rep.Update(page, fmt.Sprintf("page %d, %d posts", page, len(all)))
		return nil
	})
	if started {
		rep.Finish()
	}
	if err != nil {
		return nil, fmt.Errorf("exporting posts: %w", err)
	}
	return all, nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "posts.json", "output file, - for stdout")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or yaml")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 50, "page size used while walking")
	rootCmd.AddCommand(exportCmd)
}
