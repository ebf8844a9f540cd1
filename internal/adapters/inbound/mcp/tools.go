package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/inventory/internal/application"
	"github.com/abdidvp/inventory/internal/domain"
)

// registerTools registers all inventory MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.InventoryService) {
	s.AddTool(
		mcplib.NewTool("inventory_add_product",
			mcplib.WithDescription("Add a product. Names are unique ignoring case; price and quantity must not be negative."),
			mcplib.WithString("name", mcplib.Required(), mcplib.Description("Product name")),
			mcplib.WithNumber("price", mcplib.Required(), mcplib.Description("Unit price")),
			mcplib.WithNumber("quantity", mcplib.Required(), mcplib.Description("Units in stock (integer)")),
		),
		handleAddProduct(svc),
	)

	s.AddTool(
		mcplib.NewTool("inventory_find_product",
			mcplib.WithDescription("Look up a product by name, ignoring case. Returns found=false when it does not exist."),
			mcplib.WithString("name", mcplib.Required(), mcplib.Description("Product name")),
		),
		handleFindProduct(svc),
	)

	s.AddTool(
		mcplib.NewTool("inventory_list_products",
			mcplib.WithDescription("List all products in insertion order as JSON"),
		),
		handleListProducts(svc),
	)

	s.AddTool(
		mcplib.NewTool("inventory_total_value",
			mcplib.WithDescription("Sum of price × quantity over all products"),
		),
		handleTotalValue(svc),
	)

	s.AddTool(
		mcplib.NewTool("inventory_update_price",
			mcplib.WithDescription("Set the price of an existing product"),
			mcplib.WithString("name", mcplib.Required(), mcplib.Description("Product name")),
			mcplib.WithNumber("price", mcplib.Required(), mcplib.Description("New unit price")),
		),
		handleUpdatePrice(svc),
	)

	s.AddTool(
		mcplib.NewTool("inventory_update_quantity",
			mcplib.WithDescription("Set the quantity of an existing product"),
			mcplib.WithString("name", mcplib.Required(), mcplib.Description("Product name")),
			mcplib.WithNumber("quantity", mcplib.Required(), mcplib.Description("New units in stock (integer)")),
		),
		handleUpdateQuantity(svc),
	)
}

type findResult struct {
	Found   bool                    `json:"found"`
	Product *domain.ProductSnapshot `json:"product,omitempty"`
}

func handleAddProduct(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		price, err := priceArg(request, "price")
		if err != nil {
			return domainErrorResult(err), nil
		}
		qty, err := quantityArg(request, "quantity")
		if err != nil {
			return domainErrorResult(err), nil
		}

		p, err := svc.AddProduct(name, price, qty)
		if err != nil {
			return domainErrorResult(err), nil
		}
		return jsonResult(p)
	}
}

func handleFindProduct(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		p, ok, err := svc.FindProduct(name)
		if err != nil {
			return domainErrorResult(err), nil
		}
		if !ok {
			return jsonResult(findResult{Found: false})
		}
		return jsonResult(findResult{Found: true, Product: &p})
	}
}

func handleListProducts(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(svc.ListProducts())
	}
}

func handleTotalValue(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(svc.Summary())
	}
}

func handleUpdatePrice(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		price, err := priceArg(request, "price")
		if err != nil {
			return domainErrorResult(err), nil
		}

		p, err := svc.UpdatePrice(name, price)
		if err != nil {
			return domainErrorResult(err), nil
		}
		return jsonResult(p)
	}
}

func handleUpdateQuantity(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		qty, err := quantityArg(request, "quantity")
		if err != nil {
			return domainErrorResult(err), nil
		}

		p, err := svc.UpdateQuantity(name, qty)
		if err != nil {
			return domainErrorResult(err), nil
		}
		return jsonResult(p)
	}
}

// priceArg reads a raw argument so that strings, integers and floats are all
// judged by the same coercion rules as console input.
func priceArg(request mcplib.CallToolRequest, key string) (float64, error) {
	v, ok := request.GetArguments()[key]
	if !ok {
		return 0, fmt.Errorf("required argument %q not found", key)
	}
	return domain.CoercePrice(v)
}

func quantityArg(request mcplib.CallToolRequest, key string) (int, error) {
	v, ok := request.GetArguments()[key]
	if !ok {
		return 0, fmt.Errorf("required argument %q not found", key)
	}
	return domain.CoerceQuantity(v)
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// domainErrorResult prefixes the message with its error kind so clients can
// tell a duplicate from a bad value without parsing prose.
func domainErrorResult(err error) *mcplib.CallToolResult {
	if kind := domain.KindOf(err); kind != nil {
		return errorResult(fmt.Sprintf("%s: %v", kind, err))
	}
	return errorResult(err.Error())
}

// errorResult returns a tool-level error result (not a protocol error).
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
