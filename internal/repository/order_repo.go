package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/swagshop/ecommerce/internal/catalog"
	"github.com/swagshop/ecommerce/internal/database"
	"github.com/swagshop/ecommerce/internal/models"
)

// OrderRepository handles database operations for orders
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		db: database.DB,
	}
}

// NewOrderRepositoryWithDB creates a new order repository with a specific database connection
func NewOrderRepositoryWithDB(db *sql.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

// SaveOrder inserts a completed order into the database
func (r *OrderRepository) SaveOrder(order *models.Order) error {
	query := `
		INSERT INTO orders (id, reference, first_name, last_name, postal_code, item_slugs, total_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	now := time.Now()
	_, err := r.db.Exec(query,
		order.ID,
		order.Reference,
		order.Customer.FirstName,
		order.Customer.LastName,
		order.Customer.PostalCode,
		joinItemSlugs(order.Items),
		order.TotalCents,
		order.Status,
		now,
		now,
	)

	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	order.CreatedAt = now
	order.UpdatedAt = now

	return nil
}

// GetOrderByReference retrieves an order by its reference
func (r *OrderRepository) GetOrderByReference(reference string) (*models.Order, error) {
	query := `
		SELECT id, reference, first_name, last_name, postal_code, item_slugs, total_cents, status, created_at, updated_at
		FROM orders
		WHERE reference = $1
	`

	order := &models.Order{}
	var itemSlugs string
	err := r.db.QueryRow(query, reference).Scan(
		&order.ID,
		&order.Reference,
		&order.Customer.FirstName,
		&order.Customer.LastName,
		&order.Customer.PostalCode,
		&itemSlugs,
		&order.TotalCents,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order not found: %s", reference)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	order.Items = resolveItemSlugs(itemSlugs)
	return order, nil
}

// joinItemSlugs flattens order items for the item_slugs column
func joinItemSlugs(items []catalog.Product) string {
	slugs := make([]string, len(items))
	for i, item := range items {
		slugs[i] = item.Slug
	}
	return strings.Join(slugs, ",")
}

// resolveItemSlugs rebuilds order items from the item_slugs column. Slugs
// no longer present in the catalog are dropped.
func resolveItemSlugs(itemSlugs string) []catalog.Product {
	if itemSlugs == "" {
		return []catalog.Product{}
	}

	var items []catalog.Product
	for _, slug := range strings.Split(itemSlugs, ",") {
		if product, ok := catalog.BySlug(slug); ok {
			items = append(items, product)
		}
	}
	return items
}
