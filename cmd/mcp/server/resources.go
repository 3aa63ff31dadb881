package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const recommendationsURIPrefix = "recommendations://"

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			recommendationsURIPrefix+"{product_id}",
			"Recommendations for a product",
			mcp.WithTemplateDescription(
				"The products recommended alongside a specific product, best first, "+
					"using the server's default limit."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleRecommendationsResource,
	)
}

func (s *Server) handleRecommendationsResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, recommendationsURIPrefix) {
		return nil, fmt.Errorf("invalid recommendations URI format: %s", uri)
	}

	productID := strings.TrimPrefix(uri, recommendationsURIPrefix)
	if productID == "" {
		return nil, fmt.Errorf("missing product_id in URI: %s", uri)
	}

	products, err := s.client.GetRecommendations(ctx, productID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recommendations for %s: %w", productID, err)
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
