package tui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/abdidvp/inventory/internal/adapters/outbound/tui"
	"github.com/abdidvp/inventory/internal/domain"
	"github.com/stretchr/testify/assert"
)

func plainRenderer(currency string) *tui.Renderer {
	return tui.NewRenderer(new(bytes.Buffer), domain.ColorNever, currency)
}

func pen() domain.ProductSnapshot {
	return domain.ProductSnapshot{Name: "Pen", Price: 1.5, Quantity: 100, TotalValue: 150}
}

func TestRenderer_Describe(t *testing.T) {
	r := plainRenderer("$")
	assert.Equal(t, "Product: Pen | Price: $1.50 | Quantity: 100", r.Describe(pen()))
}

func TestRenderer_CurrencySymbol(t *testing.T) {
	r := plainRenderer("€")
	assert.Equal(t, "€2.00", r.Money(2))
	assert.Contains(t, r.Describe(pen()), "Price: €1.50")
}

func TestRenderer_EmptyCurrencyFallsBackToDefault(t *testing.T) {
	r := plainRenderer("")
	assert.Equal(t, "$0.10", r.Money(0.1))
}

func TestRenderer_Menu(t *testing.T) {
	out := plainRenderer("$").Menu()
	assert.Contains(t, out, "Inventory System")
	for i, opt := range tui.MenuOptions {
		assert.Contains(t, out, opt)
		assert.Contains(t, out, string(rune('1'+i))+".")
	}
}

func TestRenderer_ProductListEmpty(t *testing.T) {
	out := plainRenderer("$").ProductList(nil)
	assert.Equal(t, "No products in the inventory.\n", out)
}

func TestRenderer_ProductListNumbersInOrder(t *testing.T) {
	out := plainRenderer("$").ProductList([]domain.ProductSnapshot{
		pen(),
		{Name: "Ink", Price: 3, Quantity: 2, TotalValue: 6},
	})
	assert.Contains(t, out, "Products in the inventory")
	assert.Contains(t, out, "(2)")
	assert.Contains(t, out, "1. Product: Pen | Price: $1.50 | Quantity: 100\n")
	assert.Contains(t, out, "2. Product: Ink | Price: $3.00 | Quantity: 2\n")
	assert.Less(t, bytes.Index([]byte(out), []byte("Pen")), bytes.Index([]byte(out), []byte("Ink")))
}

func TestRenderer_Total(t *testing.T) {
	assert.Equal(t, "Total inventory value: $150.00\n", plainRenderer("$").Total(150))
	assert.Equal(t, "Total inventory value: $0.00\n", plainRenderer("$").Total(0))
}

func TestRenderer_Messages(t *testing.T) {
	r := plainRenderer("$")
	assert.Equal(t, "Found: Product: Pen | Price: $1.50 | Quantity: 100\n", r.Found(pen()))
	assert.Equal(t, "Product not found.\n", r.NotFound())
	assert.Equal(t, "Product \"Pen\" added to the inventory.\n", r.Added(pen()))
	assert.Equal(t, "Updated: Product: Pen | Price: $1.50 | Quantity: 100\n", r.Updated(pen()))
	assert.Equal(t, "Error: name cannot be empty\n", r.Error(errors.New("name cannot be empty")))
	assert.Equal(t, "Goodbye.\n", r.Notice("Goodbye."))
}

func TestRenderer_AlwaysEmitsStyling(t *testing.T) {
	r := tui.NewRenderer(new(bytes.Buffer), domain.ColorAlways, "$")
	assert.Contains(t, r.Total(1), "\x1b[")
}
