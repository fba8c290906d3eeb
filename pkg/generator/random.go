package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// Source bundles the run's single pseudorandom stream with a faker seeded
// from the same value. All generators share one Source, so generation order
// is part of the reproducibility contract: for a fixed seed, invoking the
// generators in a different order produces different output.
type Source struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// NewSource creates a deterministic random source for the given seed
func NewSource(seed int64) *Source {
	return &Source{
		rng:   rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(seed),
	}
}

// Faker returns the seeded fake-data generator for demographic and text fields
func (s *Source) Faker() *gofakeit.Faker {
	return s.faker
}

// Float64 returns a uniform float in [0, 1)
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Bernoulli returns true with probability p
func (s *Source) Bernoulli(p float64) bool {
	return s.rng.Float64() < p
}

// IntBetween returns a uniform integer in [lo, hi] inclusive
func (s *Source) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// AmountBetween returns a uniform currency amount in [lo, hi), rounded to cents
func (s *Source) AmountBetween(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(lo + s.rng.Float64()*(hi-lo)).Round(2)
}

// DateBetween returns a uniform instant in [start, end)
func (s *Source) DateBetween(start, end time.Time) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(s.rng.Int63n(int64(span))))
}

// Weighted is a categorical distribution over a fixed set of outcomes.
// Outcomes are held as an ordered slice rather than a map so that sampling
// stays reproducible for a fixed seed.
type Weighted[T any] struct {
	outcomes []T
	cum      []float64
	total    float64
}

// NewWeighted creates a categorical distribution from parallel outcome and
// weight slices. Weights need not sum to one; they are normalized internally.
func NewWeighted[T any](outcomes []T, weights []float64) (*Weighted[T], error) {
	if len(outcomes) == 0 {
		return nil, fmt.Errorf("weighted distribution needs at least one outcome")
	}
	if len(outcomes) != len(weights) {
		return nil, fmt.Errorf("outcome count %d does not match weight count %d", len(outcomes), len(weights))
	}

	w := &Weighted[T]{
		outcomes: outcomes,
		cum:      make([]float64, len(weights)),
	}
	for i, weight := range weights {
		if weight < 0 {
			return nil, fmt.Errorf("weight at index %d is negative: %v", i, weight)
		}
		w.total += weight
		w.cum[i] = w.total
	}
	if w.total <= 0 {
		return nil, fmt.Errorf("weighted distribution needs a positive total weight")
	}
	return w, nil
}

// mustWeighted panics on invalid construction; used for the fixed built-in
// distributions whose weights are compile-time constants.
func mustWeighted[T any](outcomes []T, weights []float64) *Weighted[T] {
	w, err := NewWeighted(outcomes, weights)
	if err != nil {
		panic(err)
	}
	return w
}

// Sample draws one outcome from the distribution using the given source
func (w *Weighted[T]) Sample(s *Source) T {
	x := s.rng.Float64() * w.total
	i := sort.SearchFloat64s(w.cum, x)
	if i >= len(w.outcomes) {
		i = len(w.outcomes) - 1
	}
	return w.outcomes[i]
}
