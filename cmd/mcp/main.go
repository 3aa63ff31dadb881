// Package main provides the entry point for the storefront recommendations MCP server.
//
// This MCP server lets merchandising assistants inspect and refresh product
// recommendations through the storefront recommendations API.
//
// Configuration:
//
//	STOREFRONT_RECOMMENDATIONS_API_URL   - Base URL of the API (default: http://localhost:8080)
//	STOREFRONT_RECOMMENDATIONS_API_TOKEN - Optional token sent as the bearer credential,
//	                                       either auth0|<jwt> or admin|<token>
package main

import (
	"log"
	"os"

	"github.com/lumiere-jewelry/storefront-recommendations/cmd/mcp/client"
	"github.com/lumiere-jewelry/storefront-recommendations/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("STOREFRONT_RECOMMENDATIONS_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiClient := client.NewClient(apiURL, os.Getenv("STOREFRONT_RECOMMENDATIONS_API_TOKEN"))
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
