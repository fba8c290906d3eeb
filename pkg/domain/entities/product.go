package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product with pricing and inventory data.
// Cost is always derived from price via the category margin, so cost < price
// holds for every valid product.
type Product struct {
	ProductID     int
	SKU           string
	Name          string
	Description   string
	CategoryID    int
	CategoryName  string
	Price         decimal.Decimal
	Cost          decimal.Decimal
	StockQuantity int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewProduct creates a validated Product, deriving cost and SKU from the
// category. SKU format: SKU-CC-NNNNN (2-digit category id, 5-digit sequence).
func NewProduct(id int, category Category, name, description string, price decimal.Decimal, stockQuantity int, isActive bool, createdAt, updatedAt time.Time) (*Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("product id must be positive, got %d", id)
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("product price must be positive, got %s", price)
	}
	if category.Margin.LessThanOrEqual(decimal.Zero) || category.Margin.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("category margin must be in (0,1), got %s", category.Margin)
	}
	if stockQuantity < 0 {
		return nil, fmt.Errorf("stock quantity cannot be negative, got %d", stockQuantity)
	}

	cost := price.Mul(decimal.NewFromInt(1).Sub(category.Margin)).Round(2)
	if !cost.LessThan(price) {
		return nil, fmt.Errorf("derived cost %s must be below price %s", cost, price)
	}

	return &Product{
		ProductID:     id,
		SKU:           fmt.Sprintf("SKU-%02d-%05d", category.ID, id),
		Name:          name,
		Description:   description,
		CategoryID:    category.ID,
		CategoryName:  category.Name,
		Price:         price,
		Cost:          cost,
		StockQuantity: stockQuantity,
		IsActive:      isActive,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}
