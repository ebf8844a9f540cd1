package mcp_test

import (
	"testing"

	mcpadapter "github.com/abdidvp/inventory/internal/adapters/inbound/mcp"
	"github.com/abdidvp/inventory/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInventoryMCPServer(t *testing.T) {
	s := mcpadapter.NewInventoryMCPServer(application.NewInventoryService(nil, nil), "test")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewInventoryMCPServer(application.NewInventoryService(nil, nil), "test")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"inventory_add_product",
		"inventory_find_product",
		"inventory_list_products",
		"inventory_total_value",
		"inventory_update_price",
		"inventory_update_quantity",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
