package mcp

import "github.com/mark3labs/mcp-go/mcp"

var listPostsTool = mcp.NewTool("list_posts",
	mcp.WithDescription("List one page of posts with their ids and titles, plus the total count and page count when the API reports them."),
	mcp.WithNumber("page",
		mcp.Description("Page number, starting at 1 (default 1)"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Posts per page (default 10)"),
	),
)

var getPostTool = mcp.NewTool("get_post",
	mcp.WithDescription("Get the full title, author id and body of a single post."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("Post id"),
	),
)
