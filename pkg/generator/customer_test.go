package generator

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ecomdw/dwgen/pkg/domain/entities"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestCustomerGenerator_Generate(t *testing.T) {
	gen := NewCustomerGenerator(NewSource(42), testNow)

	customers, err := gen.Generate(200)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(customers) != 200 {
		t.Fatalf("Expected 200 customers, got %d", len(customers))
	}

	for i, c := range customers {
		if c.CustomerID != i+1 {
			t.Errorf("Customer %d: expected sequential id %d, got %d", i, i+1, c.CustomerID)
		}
		if !c.Segment.Valid() {
			t.Errorf("Customer %d has invalid segment %q", c.CustomerID, c.Segment)
		}
		if c.Email == "" || c.FirstName == "" || c.LastName == "" || c.Address == "" {
			t.Errorf("Customer %d has empty demographic fields", c.CustomerID)
		}
		if c.Country != "USA" {
			t.Errorf("Customer %d: expected country USA, got %s", c.CustomerID, c.Country)
		}
		assertRegistrationInWindow(t, c)
	}
}

func assertRegistrationInWindow(t *testing.T, c *entities.Customer) {
	t.Helper()

	var start, end time.Time
	switch c.Segment {
	case entities.SegmentNew:
		start, end = testNow.AddDate(0, -3, 0), testNow
	case entities.SegmentPremium:
		start, end = testNow.AddDate(-3, 0, 0), testNow.AddDate(-1, 0, 0)
	default:
		start, end = testNow.AddDate(-2, 0, 0), testNow.AddDate(0, -1, 0)
	}
	// Registration is truncated to a calendar day, so allow the window edges.
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	if c.RegistrationDate.Before(dayStart) || c.RegistrationDate.After(end) {
		t.Errorf("Customer %d (%s): registration %v outside window [%v, %v]",
			c.CustomerID, c.Segment, c.RegistrationDate, dayStart, end)
	}
}

func TestCustomerGenerator_SingleCustomerScenario(t *testing.T) {
	gen := NewCustomerGenerator(NewSource(42), testNow)

	customers, err := gen.Generate(1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("Expected exactly one customer, got %d", len(customers))
	}

	c := customers[0]
	if !c.Segment.Valid() {
		t.Fatalf("Generated segment %q is not a valid value", c.Segment)
	}
	assertRegistrationInWindow(t, c)
}

func TestCustomerGenerator_SegmentDistribution(t *testing.T) {
	gen := NewCustomerGenerator(NewSource(7), testNow)

	customers, err := gen.Generate(10000)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	counts := make(map[entities.Segment]int)
	for _, c := range customers {
		counts[c.Segment]++
	}

	// Regular (0.40) should clearly dominate premium (0.10).
	if counts[entities.SegmentRegular] <= counts[entities.SegmentPremium]*2 {
		t.Errorf("Segment distribution off: regular=%d premium=%d",
			counts[entities.SegmentRegular], counts[entities.SegmentPremium])
	}
	for _, s := range []entities.Segment{entities.SegmentPremium, entities.SegmentRegular, entities.SegmentOccasional, entities.SegmentNew} {
		if counts[s] == 0 {
			t.Errorf("Segment %s never generated in 10000 customers", s)
		}
	}
}

func TestCustomerGenerator_ZeroAndNegativeCounts(t *testing.T) {
	gen := NewCustomerGenerator(NewSource(1), testNow)

	customers, err := gen.Generate(0)
	if err != nil {
		t.Fatalf("Zero count should succeed, got %v", err)
	}
	if len(customers) != 0 {
		t.Errorf("Expected empty slice for zero count, got %d records", len(customers))
	}

	_, err = gen.Generate(-1)
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("Expected InputError for negative count, got %v", err)
	}
}

func TestCustomerGenerator_Reproducible(t *testing.T) {
	a, err := NewCustomerGenerator(NewSource(42), testNow).Generate(50)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := NewCustomerGenerator(NewSource(42), testNow).Generate(50)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("Same seed and clock produced different customer collections")
	}
}
