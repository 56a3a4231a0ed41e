package repository

import (
	"fmt"
	"sync"

	"github.com/swagshop/ecommerce/internal/models"
)

// InMemoryOrderRepository keeps orders in a map. It backs the server when no
// Postgres configuration is present, and the e2e suite's in-process server.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*models.Order
}

// NewInMemoryOrderRepository creates an empty in-memory repository
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[string]*models.Order),
	}
}

// SaveOrder stores the order by reference
func (r *InMemoryOrderRepository) SaveOrder(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.Reference]; exists {
		return fmt.Errorf("order already exists: %s", order.Reference)
	}
	r.orders[order.Reference] = order
	return nil
}

// GetOrderByReference retrieves an order by its reference
func (r *InMemoryOrderRepository) GetOrderByReference(reference string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[reference]
	if !ok {
		return nil, fmt.Errorf("order not found: %s", reference)
	}
	return order, nil
}

// Count returns the number of stored orders
func (r *InMemoryOrderRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
