package store

import (
	"sync"

	"github.com/safar/go-retail-store/internal/models"
)

// Customers is the id-keyed customer registry.
type Customers struct {
	mu   sync.RWMutex
	byID map[int64]*models.Customer
}

func NewCustomers() *Customers {
	return &Customers{byID: make(map[int64]*models.Customer)}
}

// RegisterCustomer stores a customer under its id, replacing any existing
// entry with the same id.
func (s *Customers) RegisterCustomer(customer *models.Customer) {
	if customer == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[customer.ID] = customer
}

func (s *Customers) GetCustomerByID(id int64) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.byID[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// SetVIP flips the customer's VIP flag under the registry lock.
func (s *Customers) SetVIP(id int64, vip bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.byID[id]
	if !ok {
		return ErrCustomerNotFound
	}
	customer.VIP = vip
	return nil
}

// ListAllCustomers returns a value snapshot of every registered customer.
func (s *Customers) ListAllCustomers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := make([]models.Customer, 0, len(s.byID))
	for _, customer := range s.byID {
		customers = append(customers, *customer)
	}
	return customers
}
