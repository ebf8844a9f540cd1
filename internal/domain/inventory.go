package domain

import (
	"fmt"
	"iter"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Inventory is an ordered collection of products with unique names under
// case-insensitive comparison. Listing order is insertion order.
//
// Inventory does no locking; callers sharing one across goroutines must
// serialize every call.
type Inventory struct {
	products []*Product
	index    map[string]int // lowercased name -> position in products
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{index: make(map[string]int)}
}

// nameKey lowercases name so that "Widget", "WIDGET" and "widget" collide.
// Lowercasing keeps "Straße" and "STRASSE" apart, unlike full case folding.
// A Caser is stateful, so each call builds its own.
func nameKey(name string) string {
	return cases.Lower(language.Und).String(name)
}

// Add appends p. It fails with ErrTypeMismatch for a nil product and with
// ErrDuplicateKey when a product with the same name is already present. A
// product owned by another inventory, or one whose total would push the sum
// past the float64 range, is an ErrInvalidArgument. On error the inventory
// is left untouched.
func (inv *Inventory) Add(p *Product) error {
	if p == nil {
		return typeMismatch("product", "only products can be added to the inventory")
	}
	key := nameKey(p.Name())
	if _, exists := inv.index[key]; exists {
		return &FieldError{
			Field:   "name",
			Message: fmt.Sprintf("a product named %q already exists", p.Name()),
			Kind:    ErrDuplicateKey,
		}
	}
	if p.owner != nil && p.owner != inv {
		return invalidArgument("product", "product already belongs to another inventory")
	}
	if err := inv.checkTotal(nil, p.TotalValue()); err != nil {
		return err
	}
	p.owner = inv
	inv.index[key] = len(inv.products)
	inv.products = append(inv.products, p)
	return nil
}

// FindByName looks a product up by name, ignoring case and surrounding
// whitespace. A blank name is an ErrInvalidArgument. When nothing matches it
// returns (nil, false, nil).
func (inv *Inventory) FindByName(name string) (*Product, bool, error) {
	trimmed, err := validateName(name, "search name cannot be empty")
	if err != nil {
		return nil, false, err
	}
	i, ok := inv.index[nameKey(trimmed)]
	if !ok {
		return nil, false, nil
	}
	return inv.products[i], true, nil
}

// TotalValue sums TotalValue over all products. An empty inventory is worth 0.
func (inv *Inventory) TotalValue() float64 {
	var total float64
	for _, p := range inv.products {
		total += p.TotalValue()
	}
	return total
}

// checkTotal verifies that the sum stays finite when the product skip
// contributes total instead of its current value. A nil skip adds total on
// top of every product.
func (inv *Inventory) checkTotal(skip *Product, total float64) error {
	if err := validateTotal(total); err != nil {
		return err
	}
	sum := total
	for _, p := range inv.products {
		if p != skip {
			sum += p.TotalValue()
		}
	}
	return validateTotal(sum)
}

// Products returns the current contents in insertion order. The returned
// slice is a fresh copy; the products themselves are shared.
func (inv *Inventory) Products() []*Product {
	return slices.Clone(inv.products)
}

// All yields position and product in insertion order.
func (inv *Inventory) All() iter.Seq2[int, *Product] {
	return func(yield func(int, *Product) bool) {
		for i, p := range inv.products {
			if !yield(i, p) {
				return
			}
		}
	}
}

func (inv *Inventory) Len() int { return len(inv.products) }
