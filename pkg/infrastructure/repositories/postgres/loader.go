package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecomdw/dwgen/pkg/generator"
)

// Warehouse schemas: staging is the raw landing zone, warehouse holds the
// dimensional model, analytics the reporting marts. Only staging is loaded
// here; the downstream layers are built by the transformation pipeline.
var schemas = []string{"staging", "warehouse", "analytics"}

// Staging tables mirror the generated collections with minimal
// transformation. Referential cascade from order_items to orders is enforced
// here, not by the generator.
var stagingDDL = []string{
	`CREATE TABLE IF NOT EXISTS staging.customers (
		customer_id INTEGER PRIMARY KEY,
		email VARCHAR(255),
		first_name VARCHAR(100),
		last_name VARCHAR(100),
		phone VARCHAR(50),
		address VARCHAR(255),
		city VARCHAR(100),
		state VARCHAR(10),
		zip_code VARCHAR(20),
		country VARCHAR(50),
		segment VARCHAR(50),
		registration_date DATE,
		is_active BOOLEAN,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS staging.products (
		product_id INTEGER PRIMARY KEY,
		sku VARCHAR(50),
		name VARCHAR(255),
		description TEXT,
		category_id INTEGER,
		category_name VARCHAR(100),
		price DECIMAL(10,2),
		cost DECIMAL(10,2),
		stock_quantity INTEGER,
		is_active BOOLEAN,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS staging.categories (
		id INTEGER PRIMARY KEY,
		name VARCHAR(100),
		margin DECIMAL(5,2)
	)`,
	`CREATE TABLE IF NOT EXISTS staging.orders (
		order_id INTEGER PRIMARY KEY,
		customer_id INTEGER,
		order_date TIMESTAMP,
		status VARCHAR(50),
		subtotal DECIMAL(10,2),
		shipping DECIMAL(10,2),
		tax DECIMAL(10,2),
		total DECIMAL(10,2),
		payment_method VARCHAR(50),
		shipping_address VARCHAR(255),
		shipping_city VARCHAR(100),
		shipping_state VARCHAR(10),
		shipping_zip VARCHAR(20),
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS staging.order_items (
		order_item_id INTEGER PRIMARY KEY,
		order_id INTEGER REFERENCES staging.orders (order_id) ON DELETE CASCADE,
		product_id INTEGER,
		quantity INTEGER,
		unit_price DECIMAL(10,2),
		discount DECIMAL(10,2),
		line_total DECIMAL(10,2)
	)`,
}

// Loader bulk-loads a generated dataset into PostgreSQL staging tables using
// a full-refresh pattern: existing rows are truncated before each load.
type Loader struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

// NewLoader connects to PostgreSQL and returns a loader bound to the pool
func NewLoader(ctx context.Context, url string, log *slog.Logger) (*Loader, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	log.Info("connected to postgres")
	return &Loader{log: log, pool: pool}, nil
}

// CreateSchemas creates the warehouse layer schemas if they do not exist
func (l *Loader) CreateSchemas(ctx context.Context) error {
	for _, schema := range schemas {
		if _, err := l.pool.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+schema); err != nil {
			return fmt.Errorf("failed to create schema %s: %w", schema, err)
		}
	}
	l.log.Info("created schemas", "schemas", schemas)
	return nil
}

// CreateStagingTables creates the staging tables matching the CSV structure
func (l *Loader) CreateStagingTables(ctx context.Context) error {
	for _, ddl := range stagingDDL {
		if _, err := l.pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create staging table: %w", err)
		}
	}
	l.log.Info("created staging tables")
	return nil
}

// Load truncates and bulk-inserts all five collections in dependency order
func (l *Loader) Load(ctx context.Context, ds *generator.Dataset) error {
	for _, table := range generator.TableNames() {
		rows, columns := stagingRows(ds, table)
		if err := l.loadTable(ctx, table, columns, rows); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) loadTable(ctx context.Context, table string, columns []string, rows [][]any) error {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin load of staging.%s: %w", table, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Full refresh: clear out the previous run before loading.
	if _, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE staging.%s CASCADE", table)); err != nil {
		return fmt.Errorf("failed to truncate staging.%s: %w", table, err)
	}

	count, err := tx.CopyFrom(ctx, pgx.Identifier{"staging", table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to copy into staging.%s: %w", table, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit load of staging.%s: %w", table, err)
	}

	l.log.Info("loaded staging table", "table", table, "rows", count)
	return nil
}

// VerifyLoad logs row counts for all staging tables
func (l *Loader) VerifyLoad(ctx context.Context) error {
	for _, table := range generator.TableNames() {
		var count int64
		err := l.pool.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM staging.%s", table)).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to count staging.%s: %w", table, err)
		}
		l.log.Info("staging table row count", "table", table, "rows", count)
	}
	return nil
}

// Close releases the connection pool
func (l *Loader) Close() {
	l.pool.Close()
}

// stagingRows flattens one dataset collection into CopyFrom rows with its
// column list. Currency decimals are sent as float64; the DECIMAL(10,2)
// columns re-quantize them exactly.
func stagingRows(ds *generator.Dataset, table string) ([][]any, []string) {
	switch table {
	case "categories":
		columns := []string{"id", "name", "margin"}
		rows := make([][]any, 0, len(ds.Categories))
		for _, c := range ds.Categories {
			rows = append(rows, []any{c.ID, c.Name, c.Margin.InexactFloat64()})
		}
		return rows, columns
	case "customers":
		columns := []string{
			"customer_id", "email", "first_name", "last_name", "phone",
			"address", "city", "state", "zip_code", "country", "segment",
			"registration_date", "is_active", "created_at", "updated_at",
		}
		rows := make([][]any, 0, len(ds.Customers))
		for _, c := range ds.Customers {
			rows = append(rows, []any{
				c.CustomerID, c.Email, c.FirstName, c.LastName, c.Phone,
				c.Address, c.City, c.State, c.ZipCode, c.Country,
				string(c.Segment), c.RegistrationDate, c.IsActive,
				c.CreatedAt, c.UpdatedAt,
			})
		}
		return rows, columns
	case "products":
		columns := []string{
			"product_id", "sku", "name", "description", "category_id",
			"category_name", "price", "cost", "stock_quantity", "is_active",
			"created_at", "updated_at",
		}
		rows := make([][]any, 0, len(ds.Products))
		for _, p := range ds.Products {
			rows = append(rows, []any{
				p.ProductID, p.SKU, p.Name, p.Description, p.CategoryID,
				p.CategoryName, p.Price.InexactFloat64(), p.Cost.InexactFloat64(),
				p.StockQuantity, p.IsActive, p.CreatedAt, p.UpdatedAt,
			})
		}
		return rows, columns
	case "orders":
		columns := []string{
			"order_id", "customer_id", "order_date", "status", "subtotal",
			"shipping", "tax", "total", "payment_method", "shipping_address",
			"shipping_city", "shipping_state", "shipping_zip", "created_at",
			"updated_at",
		}
		rows := make([][]any, 0, len(ds.Orders))
		for _, o := range ds.Orders {
			rows = append(rows, []any{
				o.OrderID, o.CustomerID, o.OrderDate, string(o.Status),
				o.Subtotal.InexactFloat64(), o.Shipping.InexactFloat64(),
				o.Tax.InexactFloat64(), o.Total.InexactFloat64(),
				string(o.PaymentMethod), o.ShippingAddress, o.ShippingCity,
				o.ShippingState, o.ShippingZip, o.CreatedAt, o.UpdatedAt,
			})
		}
		return rows, columns
	default:
		columns := []string{
			"order_item_id", "order_id", "product_id", "quantity",
			"unit_price", "discount", "line_total",
		}
		rows := make([][]any, 0, len(ds.OrderItems))
		for _, it := range ds.OrderItems {
			rows = append(rows, []any{
				it.OrderItemID, it.OrderID, it.ProductID, it.Quantity,
				it.UnitPrice.InexactFloat64(), it.Discount.InexactFloat64(),
				it.LineTotal.InexactFloat64(),
			})
		}
		return rows, columns
	}
}
