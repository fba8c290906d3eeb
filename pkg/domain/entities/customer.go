package entities

import (
	"fmt"
	"time"
)

// Segment represents a customer behavioral segment
type Segment string

const (
	SegmentPremium    Segment = "premium"
	SegmentRegular    Segment = "regular"
	SegmentOccasional Segment = "occasional"
	SegmentNew        Segment = "new"
)

// Valid reports whether the segment is one of the four known values
func (s Segment) Valid() bool {
	switch s {
	case SegmentPremium, SegmentRegular, SegmentOccasional, SegmentNew:
		return true
	}
	return false
}

// Customer represents a customer profile with demographics and segment data
type Customer struct {
	CustomerID       int
	Email            string
	FirstName        string
	LastName         string
	Phone            string
	Address          string
	City             string
	State            string
	ZipCode          string
	Country          string
	Segment          Segment
	RegistrationDate time.Time
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewCustomer creates a validated Customer. CreatedAt is pinned to the start
// of the registration date.
func NewCustomer(id int, segment Segment, registrationDate, updatedAt time.Time) (*Customer, error) {
	if id <= 0 {
		return nil, fmt.Errorf("customer id must be positive, got %d", id)
	}
	if !segment.Valid() {
		return nil, fmt.Errorf("unknown customer segment: %s", segment)
	}
	regDay := registrationDate.Truncate(24 * time.Hour)
	return &Customer{
		CustomerID:       id,
		Segment:          segment,
		RegistrationDate: regDay,
		CreatedAt:        regDay,
		UpdatedAt:        updatedAt,
	}, nil
}
