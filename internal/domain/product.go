package domain

import "fmt"

// Product is a named, priced, quantified inventory item. Price and quantity
// are never negative and the name is never blank.
type Product struct {
	name     string
	price    float64
	quantity int

	owner *Inventory // set by Inventory.Add
}

// ProductSnapshot is a point-in-time copy of a Product, safe to hand out
// beyond the owning Inventory.
type ProductSnapshot struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	TotalValue float64 `json:"total_value"`
}

// NewProduct validates its arguments and returns a Product. The name is
// trimmed; its case is kept as given.
func NewProduct(name string, price float64, quantity int) (*Product, error) {
	trimmed, err := validateName(name, "name cannot be empty")
	if err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	return &Product{name: trimmed, price: price, quantity: quantity}, nil
}

func (p *Product) Name() string { return p.name }
func (p *Product) Price() float64 { return p.price }
func (p *Product) Quantity() int { return p.quantity }

// SetPrice replaces the price. It fails when the product total or the sum of
// its inventory would overflow. On error the previous price is kept.
func (p *Product) SetPrice(price float64) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	if err := p.checkTotal(price, p.quantity); err != nil {
		return err
	}
	p.price = price
	return nil
}

// SetQuantity replaces the quantity under the same overflow rule as SetPrice.
// On error the previous quantity is kept.
func (p *Product) SetQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	if err := p.checkTotal(p.price, quantity); err != nil {
		return err
	}
	p.quantity = quantity
	return nil
}

// checkTotal verifies that the product total for price and quantity, and the
// sum of the owning inventory if any, stay finite.
func (p *Product) checkTotal(price float64, quantity int) error {
	total := price * float64(quantity)
	if p.owner != nil {
		return p.owner.checkTotal(p, total)
	}
	return validateTotal(total)
}

// TotalValue returns price × quantity without rounding.
func (p *Product) TotalValue() float64 {
	return p.price * float64(p.quantity)
}

// Describe returns a one-line human-readable summary.
func (p *Product) Describe() string {
	return fmt.Sprintf("Product: %s | Price: $%.2f | Quantity: %d", p.name, p.price, p.quantity)
}

func (p *Product) String() string { return p.Describe() }

func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		Name:       p.name,
		Price:      p.price,
		Quantity:   p.quantity,
		TotalValue: p.TotalValue(),
	}
}
