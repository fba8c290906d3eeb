package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment state of an order
type OrderStatus string

const (
	StatusCompleted  OrderStatus = "completed"
	StatusShipped    OrderStatus = "shipped"
	StatusProcessing OrderStatus = "processing"
	StatusCancelled  OrderStatus = "cancelled"
	StatusReturned   OrderStatus = "returned"
)

// PaymentMethod represents how an order was paid
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentPaypal     PaymentMethod = "paypal"
	PaymentApplePay   PaymentMethod = "apple_pay"
)

// Order represents an order header with totals and a shipping address
// snapshot copied from the owning customer.
type Order struct {
	OrderID         int
	CustomerID      int
	OrderDate       time.Time
	Status          OrderStatus
	Subtotal        decimal.Decimal
	Shipping        decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
	PaymentMethod   PaymentMethod
	ShippingAddress string
	ShippingCity    string
	ShippingState   string
	ShippingZip     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem represents one product line within an order
type OrderItem struct {
	OrderItemID int
	OrderID     int
	ProductID   int
	Quantity    int
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	LineTotal   decimal.Decimal
}

// NewOrder creates a validated Order, checking the financial identities that
// every generated order must satisfy.
func NewOrder(id int, customer *Customer, orderDate time.Time, status OrderStatus, subtotal, shipping, tax decimal.Decimal, payment PaymentMethod, updatedAt time.Time) (*Order, error) {
	if id <= 0 {
		return nil, fmt.Errorf("order id must be positive, got %d", id)
	}
	if customer == nil {
		return nil, fmt.Errorf("order must reference a customer")
	}
	if orderDate.Before(customer.RegistrationDate) {
		return nil, fmt.Errorf("order date %s precedes customer %d registration %s",
			orderDate.Format("2006-01-02"), customer.CustomerID, customer.RegistrationDate.Format("2006-01-02"))
	}
	if subtotal.IsNegative() || shipping.IsNegative() || tax.IsNegative() {
		return nil, fmt.Errorf("order amounts cannot be negative")
	}

	return &Order{
		OrderID:         id,
		CustomerID:      customer.CustomerID,
		OrderDate:       orderDate,
		Status:          status,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             tax,
		Total:           subtotal.Add(shipping).Add(tax).Round(2),
		PaymentMethod:   payment,
		ShippingAddress: customer.Address,
		ShippingCity:    customer.City,
		ShippingState:   customer.State,
		ShippingZip:     customer.ZipCode,
		CreatedAt:       orderDate,
		UpdatedAt:       updatedAt,
	}, nil
}

// NewOrderItem creates a validated OrderItem for an active product.
// LineTotal is (unit price - discount) * quantity rounded to cents.
func NewOrderItem(id, orderID int, product *Product, quantity int, discount decimal.Decimal) (*OrderItem, error) {
	if id <= 0 {
		return nil, fmt.Errorf("order item id must be positive, got %d", id)
	}
	if orderID <= 0 {
		return nil, fmt.Errorf("order item must reference an order, got order id %d", orderID)
	}
	if product == nil {
		return nil, fmt.Errorf("order item must reference a product")
	}
	if !product.IsActive {
		return nil, fmt.Errorf("order item references inactive product %d", product.ProductID)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("order item quantity must be positive, got %d", quantity)
	}
	if discount.IsNegative() || discount.GreaterThan(product.Price) {
		return nil, fmt.Errorf("discount %s out of range for unit price %s", discount, product.Price)
	}

	lineTotal := product.Price.Sub(discount).Mul(decimal.NewFromInt(int64(quantity))).Round(2)
	return &OrderItem{
		OrderItemID: id,
		OrderID:     orderID,
		ProductID:   product.ProductID,
		Quantity:    quantity,
		UnitPrice:   product.Price,
		Discount:    discount,
		LineTotal:   lineTotal,
	}, nil
}
