package tools

import (
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yml
var catalogYAML []byte

// Product is an item of the store catalog.
type Product struct {
	ID       int     `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	Price    float64 `yaml:"price" json:"price"`
	Category string  `yaml:"category" json:"category"`
	Stock    int     `yaml:"stock" json:"stock"`
	Rating   float64 `yaml:"rating" json:"rating"`
}

// Order is a customer order.
type Order struct {
	ID       string   `yaml:"id"`
	Status   string   `yaml:"status"`
	Items    []string `yaml:"items"`
	Total    float64  `yaml:"total"`
	ETA      string   `yaml:"eta"`
	Tracking *string  `yaml:"tracking"`
}

// Catalog is the read-only product and order data of the store.
type Catalog struct {
	Products []Product `yaml:"products"`
	Orders   []Order   `yaml:"orders"`
}

// LoadCatalog parses the embedded store catalog.
func LoadCatalog() (Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog parses a YAML catalog document.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Products) == 0 {
		return Catalog{}, fmt.Errorf("catalog has no products")
	}
	return c, nil
}

// Categories returns the distinct product categories in catalog order.
func (c Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range c.Products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

// Product returns the product with the given id.
func (c Catalog) Product(id int) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Order returns the order with the given id.
func (c Catalog) Order(id string) (Order, bool) {
	for _, o := range c.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// OrderIDs returns the ids of all orders.
func (c Catalog) OrderIDs() []string {
	ids := make([]string, len(c.Orders))
	for i, o := range c.Orders {
		ids[i] = o.ID
	}
	return ids
}

// ProductIDs returns the ids of all products.
func (c Catalog) ProductIDs() []int {
	ids := make([]int, len(c.Products))
	for i, p := range c.Products {
		ids[i] = p.ID
	}
	return ids
}
