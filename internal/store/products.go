package store

import (
	"sync"
	"time"

	"github.com/safar/go-retail-store/internal/models"
)

// Products is the inventory store: the single owner of per-product stock
// counts. All mutation goes through its lock.
type Products struct {
	mu   sync.RWMutex
	byID map[int64]*models.Product
}

func NewProducts() *Products {
	return &Products{byID: make(map[int64]*models.Product)}
}

// AddProduct registers a product under its id. An existing entry with the
// same id is replaced entirely, old stock and price included.
func (s *Products) AddProduct(product *models.Product) {
	if product == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	s.byID[product.ID] = product
}

// FindProductByID returns the shared product instance, or ErrProductNotFound.
// Not-found is a normal outcome here, not a failure.
func (s *Products) FindProductByID(id int64) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// IsAvailable reports whether a product with this id is registered,
// independent of its stock level.
func (s *Products) IsAvailable(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byID[id]
	return ok
}

// GetStock returns the current stock count, or 0 for an unknown id.
func (s *Products) GetStock(id int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.byID[id]
	if !ok {
		return 0
	}
	return product.Stock
}

// ReduceStock decrements stock without re-validating sufficiency. Callers
// must have validated beforehand; order creation goes through Reserve, which
// validates and decrements under one lock.
func (s *Products) ReduceStock(id int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.byID[id]
	if !ok {
		return ErrProductNotFound
	}

	product.Stock -= quantity
	product.UpdatedAt = time.Now()
	return nil
}

// Reserve validates every line item and only then decrements stock for all
// of them, in the order supplied, without releasing the lock in between.
// If any item references an unregistered product or exceeds its stock, no
// stock is changed.
func (s *Products) Reserve(items []models.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Sufficiency is checked against the summed quantity per product, so an
	// order listing the same product twice cannot pass item-by-item and then
	// overdraw stock at commit.
	need := make(map[int64]int)
	for _, item := range items {
		if item.Product == nil {
			return ErrProductNotFound
		}
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}

		product, ok := s.byID[item.Product.ID]
		if !ok {
			return ErrProductNotFound
		}

		need[item.Product.ID] += item.Quantity
		if product.Stock < need[item.Product.ID] {
			return ErrInsufficientStock
		}
	}

	now := time.Now()
	for _, item := range items {
		product := s.byID[item.Product.ID]
		product.Stock -= item.Quantity
		product.UpdatedAt = now
	}

	return nil
}

// ListAllProducts returns a value snapshot of the catalog for display.
func (s *Products) ListAllProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.byID))
	for _, product := range s.byID {
		products = append(products, *product)
	}
	return products
}
