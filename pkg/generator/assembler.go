package generator

import (
	"time"

	"github.com/ecomdw/dwgen/pkg/domain/entities"
)

// Config holds the requested collection sizes for one generation run
type Config struct {
	Customers int
	Products  int
	Orders    int
}

// Dataset holds the five generated collections. Table names and load order
// are fixed: categories, customers and products carry no references, orders
// reference customers and products, order items reference orders.
type Dataset struct {
	Categories []entities.Category
	Customers  []*entities.Customer
	Products   []*entities.Product
	Orders     []*entities.Order
	OrderItems []*entities.OrderItem
}

// TableNames returns the warehouse table names in load dependency order
func TableNames() []string {
	return []string{"categories", "customers", "products", "orders", "order_items"}
}

// Assembler orchestrates the generators in dependency order. Products and
// customers are independent of each other, but both must exist before
// orders; the products -> customers -> orders sequence below is part of the
// reproducibility contract because all generators share one random source.
type Assembler struct {
	src     *Source
	now     time.Time
	catalog []entities.Category
}

// NewAssembler creates an assembler with a fresh random source for the given
// seed. The clock is injected so tests can pin it; reproducibility holds for
// a fixed seed, fixed counts and fixed clock.
func NewAssembler(seed int64, now time.Time) *Assembler {
	return &Assembler{
		src:     NewSource(seed),
		now:     now.UTC(),
		catalog: entities.DefaultCatalog(),
	}
}

// Generate runs the full pipeline and returns the assembled dataset.
// Either all five collections are produced or an error is returned with no
// partial dataset.
func (a *Assembler) Generate(cfg Config) (*Dataset, error) {
	if cfg.Customers < 0 || cfg.Products < 0 || cfg.Orders < 0 {
		return nil, inputErrorf("record counts cannot be negative: customers=%d products=%d orders=%d",
			cfg.Customers, cfg.Products, cfg.Orders)
	}

	products, err := NewProductGenerator(a.src, a.catalog, a.now).Generate(cfg.Products)
	if err != nil {
		return nil, err
	}

	customers, err := NewCustomerGenerator(a.src, a.now).Generate(cfg.Customers)
	if err != nil {
		return nil, err
	}

	orders, items, err := NewOrderGenerator(a.src, a.now).Generate(customers, products, cfg.Orders)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Categories: a.catalog,
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
	}, nil
}
