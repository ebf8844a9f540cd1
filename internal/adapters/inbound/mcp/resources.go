package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/inventory/internal/application"
)

const productsURI = "inventory://products"

// registerResources registers all inventory MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.InventoryService) {
	s.AddResource(
		mcplib.NewResource(
			productsURI,
			"Products",
			mcplib.WithResourceDescription("Current inventory contents in insertion order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleProductsResource(svc),
	)
}

func handleProductsResource(svc *application.InventoryService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(svc.ListProducts(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling products: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      productsURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
