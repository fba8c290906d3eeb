package generator

import (
	"errors"
	"reflect"
	"testing"
)

func TestAssembler_Generate(t *testing.T) {
	assembler := NewAssembler(42, testNow)

	dataset, err := assembler.Generate(Config{Customers: 100, Products: 50, Orders: 200})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(dataset.Categories) != 8 {
		t.Errorf("Expected 8 categories, got %d", len(dataset.Categories))
	}
	if len(dataset.Customers) != 100 {
		t.Errorf("Expected 100 customers, got %d", len(dataset.Customers))
	}
	if len(dataset.Products) != 50 {
		t.Errorf("Expected 50 products, got %d", len(dataset.Products))
	}
	if len(dataset.Orders) != 200 {
		t.Errorf("Expected 200 orders, got %d", len(dataset.Orders))
	}
	if len(dataset.OrderItems) == 0 {
		t.Error("Expected order items to be generated")
	}
}

func TestAssembler_ReferentialCompleteness(t *testing.T) {
	dataset, err := NewAssembler(42, testNow).Generate(Config{Customers: 50, Products: 30, Orders: 150})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	customerIDs := make(map[int]bool, len(dataset.Customers))
	for _, c := range dataset.Customers {
		if customerIDs[c.CustomerID] {
			t.Errorf("Duplicate customer id %d", c.CustomerID)
		}
		customerIDs[c.CustomerID] = true
	}

	activeProducts := make(map[int]bool)
	for _, p := range dataset.Products {
		if p.IsActive {
			activeProducts[p.ProductID] = true
		}
	}

	orderIDs := make(map[int]bool, len(dataset.Orders))
	for _, o := range dataset.Orders {
		if orderIDs[o.OrderID] {
			t.Errorf("Duplicate order id %d", o.OrderID)
		}
		orderIDs[o.OrderID] = true
		if !customerIDs[o.CustomerID] {
			t.Errorf("Order %d references unknown customer %d", o.OrderID, o.CustomerID)
		}
	}

	for _, item := range dataset.OrderItems {
		if !orderIDs[item.OrderID] {
			t.Errorf("Order item %d references unknown order %d", item.OrderItemID, item.OrderID)
		}
		if !activeProducts[item.ProductID] {
			t.Errorf("Order item %d references product %d that is not an active product",
				item.OrderItemID, item.ProductID)
		}
	}
}

func TestAssembler_SameSeedSameDataset(t *testing.T) {
	cfg := Config{Customers: 40, Products: 25, Orders: 80}

	a, err := NewAssembler(42, testNow).Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := NewAssembler(42, testNow).Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("Two runs with the same seed, counts and clock produced different datasets")
	}

	c, err := NewAssembler(43, testNow).Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if reflect.DeepEqual(a.Customers, c.Customers) {
		t.Error("Different seeds unexpectedly produced identical customers")
	}
}

func TestAssembler_NegativeCounts(t *testing.T) {
	var inputErr *InputError

	_, err := NewAssembler(1, testNow).Generate(Config{Customers: -1})
	if !errors.As(err, &inputErr) {
		t.Fatalf("Expected InputError for negative customer count, got %v", err)
	}
}

func TestAssembler_NoActiveProductsFailsRun(t *testing.T) {
	// With zero products there is no sampling pool for orders; the run must
	// fail rather than produce empty orders.
	_, err := NewAssembler(1, testNow).Generate(Config{Customers: 10, Products: 0, Orders: 5})
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("Expected InputError when no products exist, got %v", err)
	}
}

func TestTableNames_LoadOrder(t *testing.T) {
	want := []string{"categories", "customers", "products", "orders", "order_items"}
	if !reflect.DeepEqual(TableNames(), want) {
		t.Errorf("TableNames() = %v, want %v", TableNames(), want)
	}
}
