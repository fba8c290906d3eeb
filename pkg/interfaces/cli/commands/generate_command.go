package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ecomdw/dwgen/pkg/domain/repositories"
	csvrepo "github.com/ecomdw/dwgen/pkg/infrastructure/repositories/csv"
	"github.com/ecomdw/dwgen/pkg/infrastructure/repositories/postgres"

	"github.com/ecomdw/dwgen/pkg/generator"
)

// Config holds configuration for the generate command
type Config struct {
	Customers   int
	Products    int
	Orders      int
	Seed        int64
	OutputDir   string
	Load        bool
	PostgresURL string
	Verbose     bool
	Help        bool
}

// GenerateCommand runs the full dataset pipeline: generate all collections
// in memory, persist them as CSV, and optionally bulk-load the staging
// tables. Generation completes before any output is written, so a failed
// run leaves no partial files.
type GenerateCommand struct {
	config Config
	log    *slog.Logger
}

// NewGenerateCommand creates a generate command with the given configuration
func NewGenerateCommand(config Config, log *slog.Logger) *GenerateCommand {
	return &GenerateCommand{config: config, log: log}
}

// Execute runs the generate command
func (c *GenerateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	c.log.Info("generating dataset",
		"customers", c.config.Customers,
		"products", c.config.Products,
		"orders", c.config.Orders,
		"seed", c.config.Seed,
	)

	started := time.Now()
	assembler := generator.NewAssembler(c.config.Seed, time.Now().UTC())
	dataset, err := assembler.Generate(generator.Config{
		Customers: c.config.Customers,
		Products:  c.config.Products,
		Orders:    c.config.Orders,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	c.log.Info("generation complete",
		"customers", len(dataset.Customers),
		"products", len(dataset.Products),
		"categories", len(dataset.Categories),
		"orders", len(dataset.Orders),
		"order_items", len(dataset.OrderItems),
		"elapsed", time.Since(started).String(),
	)

	if err := c.writeCSV(dataset); err != nil {
		return err
	}
	c.log.Info("csv files written", "dir", c.config.OutputDir)

	if c.config.Load {
		if err := c.loadPostgres(ctx, dataset); err != nil {
			return err
		}
	}
	return nil
}

func (c *GenerateCommand) validateInputs() error {
	if c.config.Customers < 0 || c.config.Products < 0 || c.config.Orders < 0 {
		return fmt.Errorf("record counts cannot be negative: customers=%d products=%d orders=%d",
			c.config.Customers, c.config.Products, c.config.Orders)
	}
	if c.config.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.config.Load && c.config.PostgresURL == "" {
		return fmt.Errorf("-pg-url is required when -load is set")
	}
	return nil
}

func (c *GenerateCommand) writeCSV(dataset *generator.Dataset) error {
	if err := os.MkdirAll(c.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", c.config.OutputDir, err)
	}

	var writer repositories.DatasetWriter = csvrepo.NewWriter()
	path := func(name string) string { return filepath.Join(c.config.OutputDir, name) }

	if err := writer.WriteCustomers(path("customers.csv"), dataset.Customers); err != nil {
		return err
	}
	if err := writer.WriteProducts(path("products.csv"), dataset.Products); err != nil {
		return err
	}
	if err := writer.WriteCategories(path("categories.csv"), dataset.Categories); err != nil {
		return err
	}
	if err := writer.WriteOrders(path("orders.csv"), dataset.Orders); err != nil {
		return err
	}
	return writer.WriteOrderItems(path("order_items.csv"), dataset.OrderItems)
}

func (c *GenerateCommand) loadPostgres(ctx context.Context, dataset *generator.Dataset) error {
	loader, err := postgres.NewLoader(ctx, c.config.PostgresURL, c.log)
	if err != nil {
		return err
	}
	defer loader.Close()

	if err := loader.CreateSchemas(ctx); err != nil {
		return err
	}
	if err := loader.CreateStagingTables(ctx); err != nil {
		return err
	}
	if err := loader.Load(ctx, dataset); err != nil {
		return err
	}
	return loader.VerifyLoad(ctx)
}

func (c *GenerateCommand) showHelp() {
	fmt.Println(`dwgen - e-commerce dataset generator for warehouse pipelines

Generates referentially consistent customers, products, categories, orders
and order line items, writes them as CSV, and optionally bulk-loads them
into PostgreSQL staging tables (full refresh).

Usage:
  dwgen [flags]

Flags:
  -customers N   Number of customers to generate (default 1000)
  -products N    Number of products to generate (default 200)
  -orders N      Number of orders to generate (default 5000)
  -seed N        Random seed for reproducible output (default 42)
  -output DIR    Output directory for CSV files (default data/generated)
  -load          Load the generated CSV data into PostgreSQL
  -pg-url URL    PostgreSQL connection URL (default $PG_URL)
  -verbose       Enable debug logging
  -help          Show this help message

Examples:
  dwgen -customers 1000 -products 200 -orders 5000 -output data/generated
  dwgen -seed 7 -load -pg-url postgres://localhost:5432/ecommerce_dw`)
}
