package repositories

import "github.com/ecomdw/dwgen/pkg/domain/entities"

// DatasetWriter persists generated collections to tabular files, one file
// per collection with a header row of field names.
type DatasetWriter interface {
	WriteCategories(filename string, categories []entities.Category) error
	WriteCustomers(filename string, customers []*entities.Customer) error
	WriteProducts(filename string, products []*entities.Product) error
	WriteOrders(filename string, orders []*entities.Order) error
	WriteOrderItems(filename string, items []*entities.OrderItem) error
}
