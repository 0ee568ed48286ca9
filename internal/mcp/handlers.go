package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/postboard/internal/paging"
	"github.com/ziadkadry99/postboard/internal/posts"
)

// handleListPosts fetches one page. Missing or non-positive arguments fall
// back to the list page defaults.
func (s *Server) handleListPosts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st := paging.Default()
	if n := request.GetInt("page", 0); n > 0 {
		st.Page = n
	}
	if n := request.GetInt("limit", 0); n > 0 {
		st.Limit = n
	}

	page, err := s.fetcher.FetchPage(ctx, st.Limit, st.Page)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing posts failed: %v", err)), nil
	}
	return mcp.NewToolResultText(formatPage(st, page)), nil
}

// handleGetPost fetches a single post by id.
func (s *Server) handleGetPost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	if id < 1 {
		return mcp.NewToolResultError(fmt.Sprintf("post %d not found", id)), nil
	}

	post, err := s.fetcher.FetchOne(ctx, id)
	if posts.IsNotFound(err) {
		return mcp.NewToolResultError(fmt.Sprintf("post %d not found", id)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fetching post %d failed: %v", id, err)), nil
	}
	return mcp.NewToolResultText(formatPost(post)), nil
}

// formatPage renders a page as plain text for agent consumption.
func formatPage(st paging.State, page *posts.Page) string {
	var sb strings.Builder
	if page.Total.Known {
		fmt.Fprintf(&sb, "Total posts: %d | Page: %d of %d\n", page.Total.Count, st.Page, paging.TotalPages(page.Total.Count, st.Limit))
	} else {
		fmt.Fprintf(&sb, "Page: %d (total unknown)\n", st.Page)
	}
	if len(page.Posts) == 0 {
		sb.WriteString("\nNo posts on this page.\n")
		return sb.String()
	}
	sb.WriteString("\n")
	for _, p := range page.Posts {
		fmt.Fprintf(&sb, "- [%d] %s\n", p.ID, p.Title)
	}
	return sb.String()
}

func formatPost(p *posts.Post) string {
	return fmt.Sprintf("%s\nID: %d | User ID: %d\n\n%s\n", p.Title, p.ID, p.UserID, p.Body)
}
