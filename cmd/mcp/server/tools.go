package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lumiere-jewelry/storefront-recommendations/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
)

const maxLimit = 50

func (s *Server) handleGetRecommendations(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	productID, _ := args["product_id"].(string)

	limit := 0 // Server default
	if l, ok := args["limit"].(float64); ok && l > 0 {
		limit = min(int(l), maxLimit)
	}

	products, err := s.client.GetRecommendations(ctx, productID, limit)
	if err != nil {
		errMsg := fmt.Sprintf("failed to get recommendations: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return formatProductsResult(products)
}

func (s *Server) handleRecordBehavior(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	productID, ok := args["product_id"].(string)
	if !ok || productID == "" {
		return mcp.NewToolResultError("product_id is required"), nil
	}

	behaviorType, ok := args["behavior_type"].(string)
	if !ok || behaviorType == "" {
		return mcp.NewToolResultError("behavior_type is required"), nil
	}

	event, err := s.client.RecordBehavior(ctx, productID, behaviorType)
	if err != nil {
		errMsg := fmt.Sprintf("failed to record behavior: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Recorded %s of product %s as event %s", event.BehaviorType, event.ProductID, event.ID)
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleUpdateRecommendations(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	result, err := s.client.UpdateRecommendations(ctx)
	if err != nil {
		errMsg := fmt.Sprintf("failed to update recommendations: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Run %s wrote %d collaborative and %d content similarity edges",
		result.RunID, result.CollaborativeEdges, result.ContentEdges)
	return mcp.NewToolResultText(msg), nil
}

func formatProductsResult(products []client.Product) (*mcp.CallToolResult, error) {
	if len(products) == 0 {
		return mcp.NewToolResultText("No products found."), nil
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format products: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Found %d product(s):\n\n%s", len(products), string(data))
	return mcp.NewToolResultText(msg), nil
}
