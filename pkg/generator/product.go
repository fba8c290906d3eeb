package generator

import (
	"fmt"
	"time"
	"unicode"

	"github.com/ecomdw/dwgen/pkg/domain/entities"
)

const productActiveRate = 0.85

// ProductGenerator produces catalog products with category-conditioned
// pricing and margin-derived costs.
type ProductGenerator struct {
	src        *Source
	catalog    []entities.Category
	vocabulary map[string][]string
	now        time.Time
}

// NewProductGenerator creates a product generator over the given category
// catalog, drawing from src.
func NewProductGenerator(src *Source, catalog []entities.Category, now time.Time) *ProductGenerator {
	return &ProductGenerator{
		src:        src,
		catalog:    catalog,
		vocabulary: entities.ProductVocabulary(),
		now:        now,
	}
}

// Generate produces count product records with sequential 1-based IDs.
// A zero count yields an empty slice.
func (g *ProductGenerator) Generate(count int) ([]*entities.Product, error) {
	if count < 0 {
		return nil, inputErrorf("product count cannot be negative, got %d", count)
	}
	if len(g.catalog) == 0 {
		return nil, inputErrorf("category catalog is empty")
	}

	faker := g.src.Faker()
	products := make([]*entities.Product, 0, count)

	for i := 1; i <= count; i++ {
		category := g.catalog[g.src.IntBetween(0, len(g.catalog)-1)]

		nouns := g.vocabulary[category.Name]
		if len(nouns) == 0 {
			return nil, inputErrorf("no product vocabulary for category %q", category.Name)
		}
		baseName := nouns[g.src.IntBetween(0, len(nouns)-1)]
		name := fmt.Sprintf("%s %s", titleWord(faker.Word()), baseName)

		lo, hi := priceRange(category.Name)
		price := g.src.AmountBetween(lo, hi)

		product, err := entities.NewProduct(
			i,
			category,
			name,
			faker.Sentence(10),
			price,
			g.src.IntBetween(0, 500),
			g.src.Bernoulli(productActiveRate),
			g.src.DateBetween(g.now.AddDate(-2, 0, 0), g.now.AddDate(0, -6, 0)),
			g.now,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

// priceRange returns the category-specific price bounds: electronics carry
// high-value items, books a lower price point, everything else mid-range.
func priceRange(categoryName string) (float64, float64) {
	switch categoryName {
	case "Electronics":
		return 50, 1500
	case "Books":
		return 10, 50
	default:
		return 15, 200
	}
}

// titleWord upper-cases the first letter of a faker word
func titleWord(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
