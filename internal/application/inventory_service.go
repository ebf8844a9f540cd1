package application

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/abdidvp/inventory/internal/domain"
)

// InventoryService owns a single Inventory and serializes every call to it,
// so adapters that dispatch concurrently (the MCP server) can share one.
// Results are returned as snapshots; the owned products never leave the lock.
type InventoryService struct {
	configLoader domain.ConfigLoader
	logger       *slog.Logger

	mu        sync.Mutex
	cfg       domain.Config
	inventory *domain.Inventory
}

// NewInventoryService returns a service holding an empty inventory and the
// default config. A nil logger discards all records.
func NewInventoryService(configLoader domain.ConfigLoader, logger *slog.Logger) *InventoryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &InventoryService{
		configLoader: configLoader,
		logger:       logger,
		cfg:          domain.DefaultConfig(),
		inventory:    domain.NewInventory(),
	}
}

// Open loads the config for dir and replaces the inventory with one seeded
// from its stock entries. Entries are added in file order; the first invalid
// or duplicate entry aborts and the previous state is kept.
func (s *InventoryService) Open(dir string) error {
	cfg, err := s.configLoader.Load(dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	inv := domain.NewInventory()
	for i, entry := range cfg.Stock {
		p, err := domain.NewProduct(entry.Name, entry.Price, entry.Quantity)
		if err == nil {
			err = inv.Add(p)
		}
		if err != nil {
			return fmt.Errorf("stock entry %d (%q): %w", i+1, entry.Name, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.inventory = inv
	s.logger.Debug("stock seeded", "dir", dir, "products", inv.Len())
	return nil
}

// Config returns the settings loaded by the last successful Open.
func (s *InventoryService) Config() domain.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// AddProduct validates the values, adds a new product and returns it.
func (s *InventoryService) AddProduct(name string, price float64, quantity int) (domain.ProductSnapshot, error) {
	p, err := domain.NewProduct(name, price, quantity)
	if err != nil {
		return domain.ProductSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.inventory.Add(p); err != nil {
		return domain.ProductSnapshot{}, err
	}
	s.logger.Debug("product added", "name", p.Name(), "price", p.Price(), "quantity", p.Quantity())
	return p.Snapshot(), nil
}

// FindProduct looks a product up by name, ignoring case. The bool reports
// whether it exists; a blank name is an error.
func (s *InventoryService) FindProduct(name string) (domain.ProductSnapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok, err := s.inventory.FindByName(name)
	if err != nil || !ok {
		return domain.ProductSnapshot{}, false, err
	}
	return p.Snapshot(), true, nil
}

// ListProducts returns every product in insertion order.
func (s *InventoryService) ListProducts() []domain.ProductSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ProductSnapshot, 0, s.inventory.Len())
	for _, p := range s.inventory.All() {
		out = append(out, p.Snapshot())
	}
	return out
}

// TotalValue returns the summed value of all products.
func (s *InventoryService) TotalValue() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.TotalValue()
}

// Summary is the product count and total value of one inventory state.
type Summary struct {
	Products   int     `json:"products"`
	TotalValue float64 `json:"total_value"`
}

// Summary returns the product count and total value read under one lock, so
// both describe the same state.
func (s *InventoryService) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summary{Products: s.inventory.Len(), TotalValue: s.inventory.TotalValue()}
}

// UpdatePrice sets the price of an existing product.
func (s *InventoryService) UpdatePrice(name string, price float64) (domain.ProductSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.mustFind(name)
	if err != nil {
		return domain.ProductSnapshot{}, err
	}
	if err := p.SetPrice(price); err != nil {
		return domain.ProductSnapshot{}, err
	}
	s.logger.Debug("price updated", "name", p.Name(), "price", price)
	return p.Snapshot(), nil
}

// UpdateQuantity sets the quantity of an existing product.
func (s *InventoryService) UpdateQuantity(name string, quantity int) (domain.ProductSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.mustFind(name)
	if err != nil {
		return domain.ProductSnapshot{}, err
	}
	if err := p.SetQuantity(quantity); err != nil {
		return domain.ProductSnapshot{}, err
	}
	s.logger.Debug("quantity updated", "name", p.Name(), "quantity", quantity)
	return p.Snapshot(), nil
}

// mustFind must be called with s.mu held.
func (s *InventoryService) mustFind(name string) (*domain.Product, error) {
	p, ok, err := s.inventory.FindByName(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrProductNotFound, strings.TrimSpace(name))
	}
	return p, nil
}
