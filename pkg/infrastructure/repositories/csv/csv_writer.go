package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecomdw/dwgen/pkg/domain/entities"
	"github.com/ecomdw/dwgen/pkg/domain/repositories"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05"
)

// Writer persists generated collections as CSV files with fixed headers.
// Currency columns carry exactly two decimal places, booleans serialize as
// true/false, dates as ISO calendar dates and timestamps as ISO date-times.
type Writer struct{}

// NewWriter creates a new CSV writer
func NewWriter() *Writer {
	return &Writer{}
}

// Verify interface compliance
var _ repositories.DatasetWriter = (*Writer)(nil)

var customerHeader = []string{
	"customer_id", "email", "first_name", "last_name", "phone", "address",
	"city", "state", "zip_code", "country", "segment", "registration_date",
	"is_active", "created_at", "updated_at",
}

var productHeader = []string{
	"product_id", "sku", "name", "description", "category_id", "category_name",
	"price", "cost", "stock_quantity", "is_active", "created_at", "updated_at",
}

var categoryHeader = []string{"id", "name", "margin"}

var orderHeader = []string{
	"order_id", "customer_id", "order_date", "status", "subtotal", "shipping",
	"tax", "total", "payment_method", "shipping_address", "shipping_city",
	"shipping_state", "shipping_zip", "created_at", "updated_at",
}

var orderItemHeader = []string{
	"order_item_id", "order_id", "product_id", "quantity", "unit_price",
	"discount", "line_total",
}

// WriteCategories writes the category reference table
func (w *Writer) WriteCategories(filename string, categories []entities.Category) error {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Name,
			money(c.Margin),
		})
	}
	return writeFile(filename, "categories", categoryHeader, rows)
}

// WriteCustomers writes customer records to a CSV file
func (w *Writer) WriteCustomers(filename string, customers []*entities.Customer) error {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			strconv.Itoa(c.CustomerID),
			c.Email,
			c.FirstName,
			c.LastName,
			c.Phone,
			c.Address,
			c.City,
			c.State,
			c.ZipCode,
			c.Country,
			string(c.Segment),
			date(c.RegistrationDate),
			boolean(c.IsActive),
			timestamp(c.CreatedAt),
			timestamp(c.UpdatedAt),
		})
	}
	return writeFile(filename, "customers", customerHeader, rows)
}

// WriteProducts writes product records to a CSV file
func (w *Writer) WriteProducts(filename string, products []*entities.Product) error {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.Itoa(p.ProductID),
			p.SKU,
			p.Name,
			p.Description,
			strconv.Itoa(p.CategoryID),
			p.CategoryName,
			money(p.Price),
			money(p.Cost),
			strconv.Itoa(p.StockQuantity),
			boolean(p.IsActive),
			timestamp(p.CreatedAt),
			timestamp(p.UpdatedAt),
		})
	}
	return writeFile(filename, "products", productHeader, rows)
}

// WriteOrders writes order header records to a CSV file
func (w *Writer) WriteOrders(filename string, orders []*entities.Order) error {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.Itoa(o.OrderID),
			strconv.Itoa(o.CustomerID),
			timestamp(o.OrderDate),
			string(o.Status),
			money(o.Subtotal),
			money(o.Shipping),
			money(o.Tax),
			money(o.Total),
			string(o.PaymentMethod),
			o.ShippingAddress,
			o.ShippingCity,
			o.ShippingState,
			o.ShippingZip,
			timestamp(o.CreatedAt),
			timestamp(o.UpdatedAt),
		})
	}
	return writeFile(filename, "orders", orderHeader, rows)
}

// WriteOrderItems writes order line-item records to a CSV file
func (w *Writer) WriteOrderItems(filename string, items []*entities.OrderItem) error {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.Itoa(it.OrderItemID),
			strconv.Itoa(it.OrderID),
			strconv.Itoa(it.ProductID),
			strconv.Itoa(it.Quantity),
			money(it.UnitPrice),
			money(it.Discount),
			money(it.LineTotal),
		})
	}
	return writeFile(filename, "order_items", orderItemHeader, rows)
}

func writeFile(filename, table string, header []string, rows [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s CSV %s: %w", table, filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s CSV header: %w", table, err)
	}
	for i, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s CSV row %d: %w", table, i+2, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s CSV: %w", table, err)
	}
	return file.Close()
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func boolean(b bool) string {
	return strconv.FormatBool(b)
}

func date(t time.Time) string {
	return t.Format(dateLayout)
}

func timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
