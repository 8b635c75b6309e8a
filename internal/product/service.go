// Package product serves the fixed product catalog.
package product

// Product is a catalog entry.
type Product struct {
	ID    int64   `json:"id"    example:"1"`
	Name  string  `json:"name"  example:"Laptop"`
	Price float64 `json:"price" example:"999.99"`
}

var catalog = []Product{
	{ID: 1, Name: "Laptop", Price: 999.99},
	{ID: 2, Name: "Smartphone", Price: 499.49},
	{ID: 3, Name: "Tablet", Price: 299.99},
}

// Service exposes the read-only catalog.
type Service struct{}

// NewService creates a new product Service.
func NewService() *Service {
	return &Service{}
}

// GetAllProducts returns every product in catalog order. The slice is a copy;
// callers may modify it freely.
func (s *Service) GetAllProducts() []Product {
	out := make([]Product, len(catalog))
	copy(out, catalog)
	return out
}
