package entities

import "github.com/shopspring/decimal"

// Category represents a product category with its typical profit margin.
// Margin is the fraction of price kept as profit: cost = price * (1 - margin).
type Category struct {
	ID     int
	Name   string
	Margin decimal.Decimal
}

// DefaultCatalog returns the fixed, ordered category reference data.
// The catalog is static domain knowledge, not configuration.
func DefaultCatalog() []Category {
	return []Category{
		{ID: 1, Name: "Electronics", Margin: decimal.NewFromFloat(0.15)},
		{ID: 2, Name: "Clothing", Margin: decimal.NewFromFloat(0.40)},
		{ID: 3, Name: "Home & Garden", Margin: decimal.NewFromFloat(0.35)},
		{ID: 4, Name: "Sports", Margin: decimal.NewFromFloat(0.30)},
		{ID: 5, Name: "Books", Margin: decimal.NewFromFloat(0.25)},
		{ID: 6, Name: "Toys", Margin: decimal.NewFromFloat(0.45)},
		{ID: 7, Name: "Beauty", Margin: decimal.NewFromFloat(0.50)},
		{ID: 8, Name: "Food & Grocery", Margin: decimal.NewFromFloat(0.20)},
	}
}

// ProductVocabulary returns the base product nouns for each category name.
// Generators combine these with a random word for variety.
func ProductVocabulary() map[string][]string {
	return map[string][]string{
		"Electronics": {
			"Laptop", "Smartphone", "Tablet", "Headphones",
			"Smart Watch", "Camera", "Speaker", "Monitor",
		},
		"Clothing": {
			"T-Shirt", "Jeans", "Dress", "Jacket",
			"Sneakers", "Hoodie", "Shorts", "Sweater",
		},
		"Home & Garden": {
			"Lamp", "Rug", "Plant Pot", "Cushion",
			"Blanket", "Vase", "Mirror", "Clock",
		},
		"Sports": {
			"Yoga Mat", "Dumbbells", "Running Shoes", "Basketball",
			"Tennis Racket", "Bike Helmet", "Gym Bag", "Water Bottle",
		},
		"Books": {
			"Fiction Novel", "Cookbook", "Biography", "Self-Help Book",
			"Science Book", "History Book", "Art Book", "Travel Guide",
		},
		"Toys": {
			"Board Game", "Puzzle", "Action Figure", "Doll",
			"Building Blocks", "Remote Control Car", "Stuffed Animal", "Card Game",
		},
		"Beauty": {
			"Moisturizer", "Lipstick", "Perfume", "Shampoo",
			"Face Mask", "Nail Polish", "Sunscreen", "Hair Dryer",
		},
		"Food & Grocery": {
			"Coffee Beans", "Olive Oil", "Chocolate Box", "Spice Set",
			"Tea Collection", "Honey", "Pasta Set", "Snack Box",
		},
	}
}
