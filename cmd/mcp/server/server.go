// Package server provides the MCP server implementation.
package server

import (
	"github.com/lumiere-jewelry/storefront-recommendations/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server is the MCP server for storefront recommendations.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"storefront-recommendations",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_recommendations",
		mcp.WithDescription(
			"Get product recommendations. With a product_id, returns products shoppers may want "+
				"alongside that product; without one, returns trending and featured products, "+
				"personalized when the configured token identifies a shopper."),
		mcp.WithString("product_id",
			mcp.Description("ID of the product being viewed"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of products to return (default: 8, max: 50)"),
		),
	), s.handleGetRecommendations)

	s.mcpServer.AddTool(mcp.NewTool("record_behavior",
		mcp.WithDescription("Record a shopper interaction with a product. This feeds future recommendations."),
		mcp.WithString("product_id",
			mcp.Required(),
			mcp.Description("ID of the product interacted with"),
		),
		mcp.WithString("behavior_type",
			mcp.Required(),
			mcp.Description("One of 'view', 'wishlist', 'add_to_cart' or 'purchase'"),
		),
	), s.handleRecordBehavior)

	s.mcpServer.AddTool(mcp.NewTool("update_recommendations",
		mcp.WithDescription(
			"Recompute the product similarity table from recent shopper behavior and catalog "+
				"attributes. Requires an admin token."),
	), s.handleUpdateRecommendations)
}
