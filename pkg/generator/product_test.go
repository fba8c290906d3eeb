package generator

import (
	"errors"
	"reflect"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ecomdw/dwgen/pkg/domain/entities"
)

var skuPattern = regexp.MustCompile(`^SKU-\d{2}-\d{5}$`)

func newTestProductGenerator(seed int64) *ProductGenerator {
	return NewProductGenerator(NewSource(seed), entities.DefaultCatalog(), testNow)
}

func TestProductGenerator_Generate(t *testing.T) {
	gen := newTestProductGenerator(42)

	products, err := gen.Generate(300)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(products) != 300 {
		t.Fatalf("Expected 300 products, got %d", len(products))
	}

	margins := make(map[int]decimal.Decimal)
	for _, c := range entities.DefaultCatalog() {
		margins[c.ID] = c.Margin
	}
	one := decimal.NewFromInt(1)

	for i, p := range products {
		if p.ProductID != i+1 {
			t.Errorf("Product %d: expected sequential id %d, got %d", i, i+1, p.ProductID)
		}
		if !skuPattern.MatchString(p.SKU) {
			t.Errorf("Product %d: SKU %q does not match SKU-CC-NNNNN", p.ProductID, p.SKU)
		}
		if p.StockQuantity < 0 || p.StockQuantity > 500 {
			t.Errorf("Product %d: stock %d outside [0,500]", p.ProductID, p.StockQuantity)
		}

		margin, ok := margins[p.CategoryID]
		if !ok {
			t.Errorf("Product %d references unknown category %d", p.ProductID, p.CategoryID)
			continue
		}
		wantCost := p.Price.Mul(one.Sub(margin)).Round(2)
		if !p.Cost.Equal(wantCost) {
			t.Errorf("Product %d: cost %s, want %s", p.ProductID, p.Cost, wantCost)
		}
		if !p.Cost.LessThan(p.Price) {
			t.Errorf("Product %d: cost %s not below price %s", p.ProductID, p.Cost, p.Price)
		}

		assertPriceInRange(t, p)
		if !p.CreatedAt.Before(p.UpdatedAt) {
			t.Errorf("Product %d: created_at %v not before updated_at %v", p.ProductID, p.CreatedAt, p.UpdatedAt)
		}
	}
}

func assertPriceInRange(t *testing.T, p *entities.Product) {
	t.Helper()

	price, _ := p.Price.Float64()
	var lo, hi float64
	switch p.CategoryName {
	case "Electronics":
		lo, hi = 50, 1500
	case "Books":
		lo, hi = 10, 50
	default:
		lo, hi = 15, 200
	}
	if price < lo || price > hi {
		t.Errorf("Product %d (%s): price %.2f outside [%.0f,%.0f]", p.ProductID, p.CategoryName, price, lo, hi)
	}
}

func TestProductGenerator_ZeroAndNegativeCounts(t *testing.T) {
	gen := newTestProductGenerator(1)

	products, err := gen.Generate(0)
	if err != nil {
		t.Fatalf("Zero count should succeed, got %v", err)
	}
	if len(products) != 0 {
		t.Errorf("Expected empty slice for zero count, got %d records", len(products))
	}

	_, err = gen.Generate(-5)
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("Expected InputError for negative count, got %v", err)
	}
}

func TestProductGenerator_Reproducible(t *testing.T) {
	a, err := newTestProductGenerator(42).Generate(50)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := newTestProductGenerator(42).Generate(50)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("Same seed and clock produced different product collections")
	}
}
