package generator

import (
	"time"

	"github.com/ecomdw/dwgen/pkg/domain/entities"
)

// Customer segment distribution reflects a typical e-commerce customer base:
// a small premium core, a large regular middle, and a steady stream of
// recent signups.
var segmentDistribution = mustWeighted(
	[]entities.Segment{
		entities.SegmentPremium,
		entities.SegmentRegular,
		entities.SegmentOccasional,
		entities.SegmentNew,
	},
	[]float64{0.10, 0.40, 0.30, 0.20},
)

const customerActiveRate = 0.9

// CustomerGenerator produces customer profiles with segment-conditioned
// registration tenure and faker-backed demographics.
type CustomerGenerator struct {
	src *Source
	now time.Time
}

// NewCustomerGenerator creates a customer generator drawing from src,
// with registration windows anchored at now.
func NewCustomerGenerator(src *Source, now time.Time) *CustomerGenerator {
	return &CustomerGenerator{src: src, now: now}
}

// Generate produces count customer records with sequential 1-based IDs.
// A zero count yields an empty slice.
func (g *CustomerGenerator) Generate(count int) ([]*entities.Customer, error) {
	if count < 0 {
		return nil, inputErrorf("customer count cannot be negative, got %d", count)
	}

	faker := g.src.Faker()
	customers := make([]*entities.Customer, 0, count)

	for i := 1; i <= count; i++ {
		segment := segmentDistribution.Sample(g.src)
		regStart, regEnd := g.registrationWindow(segment)
		regDate := dateOnly(g.src.DateBetween(regStart, regEnd))

		customer, err := entities.NewCustomer(i, segment, regDate, g.now)
		if err != nil {
			return nil, err
		}

		customer.Email = faker.Email()
		customer.FirstName = faker.FirstName()
		customer.LastName = faker.LastName()
		customer.Phone = faker.PhoneFormatted()
		customer.Address = faker.Street()
		customer.City = faker.City()
		customer.State = faker.StateAbr()
		customer.ZipCode = faker.Zip()
		customer.Country = "USA"
		customer.IsActive = g.src.Bernoulli(customerActiveRate)

		customers = append(customers, customer)
	}
	return customers, nil
}

// registrationWindow returns the registration date range for a segment.
// New customers registered within the last three months, premium customers
// one to three years ago, everyone else between one month and two years ago.
func (g *CustomerGenerator) registrationWindow(segment entities.Segment) (time.Time, time.Time) {
	switch segment {
	case entities.SegmentNew:
		return g.now.AddDate(0, -3, 0), g.now
	case entities.SegmentPremium:
		return g.now.AddDate(-3, 0, 0), g.now.AddDate(-1, 0, 0)
	default:
		return g.now.AddDate(-2, 0, 0), g.now.AddDate(0, -1, 0)
	}
}

// dateOnly strips the time-of-day component, keeping a UTC calendar date
func dateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
