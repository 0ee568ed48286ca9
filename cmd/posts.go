package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/paging"
	"github.com/ziadkadry99/postboard/internal/posts"
)

var (
	postsPage   int
	postsLimit  int
	postsFormat string
	postFormat  string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Print one page of posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		s := paging.State{Limit: postsLimit, Page: postsPage}
		if !s.Valid() {
			return fmt.Errorf("--page and --limit must be positive")
		}

		page, err := newFetcherFromConfig(cfg).FetchPage(context.Background(), s.Limit, s.Page)
		if err != nil {
			return fmt.Errorf("fetching posts: %w", err)
		}

		w := cmd.OutOrStdout()
		if postsFormat != "text" {
			return writeFormatted(w, postsFormat, page.Posts)
		}

		if page.Total.Known {
			fmt.Fprintf(w, "Total posts: %d | Page: %d of %d\n\n", page.Total.Count, s.Page, paging.TotalPages(page.Total.Count, s.Limit))
		} else {
			fmt.Fprintf(w, "Page: %d\n\n", s.Page)
		}
		if len(page.Posts) == 0 {
			fmt.Fprintln(w, "No posts on this page.")
		}
		for _, p := range page.Posts {
			fmt.Fprintf(w, "%5d  %s\n", p.ID, p.Title)
		}
		return nil
	},
}

var postCmd = &cobra.Command{
	Use:   "post <id>",
	Short: "Print a single post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil || id < 1 {
			return fmt.Errorf("post %q not found", args[0])
		}

		post, err := newFetcherFromConfig(cfg).FetchOne(context.Background(), id)
		if posts.IsNotFound(err) {
			return fmt.Errorf("post %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("fetching post %d: %w", id, err)
		}

		w := cmd.OutOrStdout()
		if postFormat != "text" {
			return writeFormatted(w, postFormat, post)
		}
		fmt.Fprintf(w, "%s\n", post.Title)
		fmt.Fprintf(w, "ID: %d | User ID: %d\n\n", post.ID, post.UserID)
		fmt.Fprintln(w, post.Body)
		return nil
	},
}

func init() {
	postsCmd.Flags().IntVar(&postsPage, "page", paging.DefaultPage, "page number")
	postsCmd.Flags().IntVar(&postsLimit, "limit", paging.DefaultLimit, "posts per page")
	postsCmd.Flags().StringVarP(&postsFormat, "format", "f", "text", "output format: text, json or yaml")
	postCmd.Flags().StringVarP(&postFormat, "format", "f", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(postsCmd, postCmd)
}
