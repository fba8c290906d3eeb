package generator

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecomdw/dwgen/pkg/domain/entities"
)

// PlatformEpoch is the earliest allowed order date, regardless of how long
// ago a customer registered.
var PlatformEpoch = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

// statusDistribution weights order status toward completed: half of all
// orders complete, the remainder split evenly across the other states.
var statusDistribution = mustWeighted(
	[]entities.OrderStatus{
		entities.StatusCompleted,
		entities.StatusShipped,
		entities.StatusProcessing,
		entities.StatusCancelled,
		entities.StatusReturned,
	},
	[]float64{4, 1, 1, 1, 1},
)

var paymentDistribution = mustWeighted(
	[]entities.PaymentMethod{
		entities.PaymentCreditCard,
		entities.PaymentDebitCard,
		entities.PaymentPaypal,
		entities.PaymentApplePay,
	},
	[]float64{1, 1, 1, 1},
)

// segmentOrderWeight drives how often a customer is picked to own an order:
// premium customers order 4x as often as occasional or new ones.
func segmentOrderWeight(segment entities.Segment) float64 {
	switch segment {
	case entities.SegmentPremium:
		return 4
	case entities.SegmentRegular:
		return 2
	default:
		return 1
	}
}

const (
	discountChance        = 0.2
	taxRate               = 0.08
	freeShippingThreshold = 50
)

var discountRates = []float64{0.10, 0.15, 0.20}

var shippingOptions = []decimal.Decimal{
	decimal.Zero,
	decimal.NewFromFloat(5.99),
	decimal.NewFromFloat(9.99),
	decimal.NewFromFloat(14.99),
}

// OrderGenerator produces orders and their line items by sampling from
// already-generated customer and product collections. It holds read-only
// references and never mutates either collection.
type OrderGenerator struct {
	src *Source
	now time.Time
}

// NewOrderGenerator creates an order generator drawing from src, with order
// dates bounded above by now.
func NewOrderGenerator(src *Source, now time.Time) *OrderGenerator {
	return &OrderGenerator{src: src, now: now}
}

// Generate produces count orders with their line items. Order IDs are
// sequential and 1-based; order item IDs come from one counter shared across
// all orders in the run. It fails with an InputError when there is no
// customer to own an order or no active product to sell.
func (g *OrderGenerator) Generate(customers []*entities.Customer, products []*entities.Product, count int) ([]*entities.Order, []*entities.OrderItem, error) {
	if count < 0 {
		return nil, nil, inputErrorf("order count cannot be negative, got %d", count)
	}
	if count > 0 && len(customers) == 0 {
		return nil, nil, inputErrorf("no customers available for order generation")
	}

	// Only active products are ever sold. The sampling pool is built once
	// per call, not per order.
	active := make([]*entities.Product, 0, len(products))
	for _, p := range products {
		if p.IsActive {
			active = append(active, p)
		}
	}
	if count > 0 && len(active) == 0 {
		return nil, nil, inputErrorf("no active products available for order generation")
	}

	picker, err := newCustomerPicker(customers)
	if err != nil {
		return nil, nil, err
	}

	orders := make([]*entities.Order, 0, count)
	items := make([]*entities.OrderItem, 0, count*2)
	scratch := make([]*entities.Product, len(active))
	orderItemID := 1

	for orderID := 1; orderID <= count; orderID++ {
		customer := picker.pick(g.src)

		// Premium customers tend to buy more items per order. The draw is
		// capped at the number of distinct active products.
		var wantItems int
		if customer.Segment == entities.SegmentPremium {
			wantItems = g.src.IntBetween(2, 6)
		} else {
			wantItems = g.src.IntBetween(1, 4)
		}
		picked := g.sampleProducts(active, scratch, wantItems)

		subtotal := decimal.Zero
		for _, product := range picked {
			quantity := g.src.IntBetween(1, 3)

			discount := decimal.Zero
			if g.src.Bernoulli(discountChance) {
				rate := discountRates[g.src.IntBetween(0, len(discountRates)-1)]
				discount = product.Price.Mul(decimal.NewFromFloat(rate)).Round(2)
			}

			item, err := entities.NewOrderItem(orderItemID, orderID, product, quantity, discount)
			if err != nil {
				return nil, nil, err
			}
			orderItemID++
			items = append(items, item)
			subtotal = subtotal.Add(item.LineTotal)
		}
		subtotal = subtotal.Round(2)

		shipping := g.shippingFor(subtotal)
		tax := taxOn(subtotal)

		// Orders never precede the customer's registration or the platform
		// launch.
		earliest := customer.RegistrationDate
		if earliest.Before(PlatformEpoch) {
			earliest = PlatformEpoch
		}
		orderDate := g.src.DateBetween(earliest, g.now)

		order, err := entities.NewOrder(
			orderID,
			customer,
			orderDate,
			statusDistribution.Sample(g.src),
			subtotal,
			shipping,
			tax,
			paymentDistribution.Sample(g.src),
			orderDate.AddDate(0, 0, g.src.IntBetween(0, 5)),
		)
		if err != nil {
			return nil, nil, err
		}
		orders = append(orders, order)
	}
	return orders, items, nil
}

// sampleProducts draws up to want distinct products without replacement via
// a partial Fisher-Yates shuffle over a reusable scratch slice.
func (g *OrderGenerator) sampleProducts(active, scratch []*entities.Product, want int) []*entities.Product {
	n := len(active)
	if want > n {
		want = n
	}
	copy(scratch, active)
	for i := 0; i < want; i++ {
		j := g.src.IntBetween(i, n-1)
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}
	return scratch[:want]
}

// shippingFor returns the shipping charge for a subtotal: free at or above
// the threshold, otherwise one of the fixed rate options.
func (g *OrderGenerator) shippingFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(decimal.NewFromInt(freeShippingThreshold)) {
		return decimal.Zero
	}
	return shippingOptions[g.src.IntBetween(0, len(shippingOptions)-1)]
}

// taxOn returns the tax due on a subtotal, rounded to cents
func taxOn(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(decimal.NewFromFloat(taxRate)).Round(2)
}

// customerPicker performs weighted sampling over the full customer
// collection using a cumulative weight table built once per generation call.
type customerPicker struct {
	customers []*entities.Customer
	cum       []float64
	total     float64
}

func newCustomerPicker(customers []*entities.Customer) (*customerPicker, error) {
	p := &customerPicker{
		customers: customers,
		cum:       make([]float64, len(customers)),
	}
	for i, c := range customers {
		p.total += segmentOrderWeight(c.Segment)
		p.cum[i] = p.total
	}
	if len(customers) > 0 && p.total <= 0 {
		return nil, inputErrorf("customer selection weights sum to zero")
	}
	return p, nil
}

func (p *customerPicker) pick(src *Source) *entities.Customer {
	x := src.Float64() * p.total
	i := sort.SearchFloat64s(p.cum, x)
	if i >= len(p.customers) {
		i = len(p.customers) - 1
	}
	return p.customers[i]
}
