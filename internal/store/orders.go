package store

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/safar/go-retail-store/internal/models"
)

// Orders is the order workflow: the only component allowed to change
// inventory as a side effect of order placement.
type Orders struct {
	mu         sync.RWMutex
	inventory  *Products
	byCustomer map[int64][]*models.Order
	all        []*models.Order
	seq        atomic.Int64
}

func NewOrders(inventory *Products) *Orders {
	return &Orders{
		inventory:  inventory,
		byCustomer: make(map[int64][]*models.Order),
	}
}

func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%s", uuid.NewString())
}

// CreateOrder validates every line item against inventory and commits stock
// decrements for all of them as one atomic step. If any item fails, the
// whole order is rejected and no stock is changed. A returned order is
// already reflected in reduced inventory and in the customer's history.
//
// Rejection surfaces as ErrProductNotFound, ErrInsufficientStock,
// ErrInvalidQuantity or ErrEmptyOrder; there is no partially applied order.
func (s *Orders) CreateOrder(customer *models.Customer, items []models.OrderItem) (*models.Order, error) {
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	// Validation and commit happen under the inventory lock, so two
	// concurrent orders can never both pass validation against the same
	// stock.
	if err := s.inventory.Reserve(items); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The order owns its item list; later mutation of the caller's slice
	// must not change the stored order's total.
	order := &models.Order{
		ID:          s.seq.Add(1),
		OrderNumber: generateOrderNumber(),
		Customer:    customer,
		Status:      models.OrderStatusConfirmed,
		Items:       append([]models.OrderItem(nil), items...),
		CreatedAt:   time.Now(),
	}

	s.byCustomer[customer.ID] = append(s.byCustomer[customer.ID], order)
	s.all = append(s.all, order)

	return order, nil
}

// GetOrdersForCustomer returns the customer's order history, oldest first.
// A customer with no orders gets an empty slice, never an error.
func (s *Orders) GetOrdersForCustomer(customerID int64) []*models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := s.byCustomer[customerID]
	out := make([]*models.Order, len(orders))
	copy(out, orders)
	return out
}

// ListAllOrders returns every stored order in creation order.
func (s *Orders) ListAllOrders() []*models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Order, len(s.all))
	copy(out, s.all)
	return out
}

// TotalRevenue sums the total of every stored order.
func (s *Orders) TotalRevenue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	revenue := decimal.Zero
	for _, order := range s.all {
		revenue = revenue.Add(order.Total())
	}
	return revenue
}

// AverageOrderValue is total revenue over order count, 0 when there are no
// orders.
func (s *Orders) AverageOrderValue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.all) == 0 {
		return decimal.Zero
	}

	revenue := decimal.Zero
	for _, order := range s.all {
		revenue = revenue.Add(order.Total())
	}
	return revenue.Div(decimal.NewFromInt(int64(len(s.all))))
}

// HighestValueOrder returns the order with the greatest total, or nil when
// no orders exist. Comparison is strictly-greater, so ties go to the order
// created first.
func (s *Orders) HighestValueOrder() *models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var highest *models.Order
	highestValue := decimal.Zero
	for _, order := range s.all {
		total := order.Total()
		if highest == nil || total.GreaterThan(highestValue) {
			highest = order
			highestValue = total
		}
	}
	return highest
}

// OrderCount returns the number of stored orders.
func (s *Orders) OrderCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.all)
}
