// Package mcp exposes the posts API as Model Context Protocol tools.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/postboard/internal/posts"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server with list_posts and get_post tools.
type Server struct {
	fetcher posts.Fetcher
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server reading through f.
func NewServer(f posts.Fetcher) *Server {
	s := &Server{fetcher: f}

	s.mcp = server.NewMCPServer(
		"postboard",
		Version,
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(listPostsTool, s.handleListPosts)
	s.mcp.AddTool(getPostTool, s.handleGetPost)

	return s
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
