package services

import (
	"fmt"

	"github.com/swagshop/ecommerce/internal/models"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	SaveOrder(order *models.Order) error
	GetOrderByReference(reference string) (*models.Order, error)
}

// OrderService handles checkout order business logic
type OrderService interface {
	PlaceOrder(customer models.CustomerInfo, cart *models.Cart) (*models.Order, error)
	GetOrderByReference(reference string) (*models.Order, error)
}

// OrderServiceImpl implements OrderService
type OrderServiceImpl struct {
	orderRepo OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo OrderRepository) OrderService {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
	}
}

// PlaceOrder turns the cart into a completed order and persists it
func (s *OrderServiceImpl) PlaceOrder(customer models.CustomerInfo, cart *models.Cart) (*models.Order, error) {
	// Create order using domain factory method
	order, err := models.NewOrder(customer, cart)
	if err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}

	if err := order.Complete(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveOrder(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	return order, nil
}

// GetOrderByReference retrieves an order by its reference
func (s *OrderServiceImpl) GetOrderByReference(reference string) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByReference(reference)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}
