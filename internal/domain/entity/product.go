// Package entity contains the core business objects of the project.
package entity

import "slices"

// Category is one of the fixed product categories of the store.
type Category string

const (
	CategoryLivingRoom Category = "Living Room"
	CategoryBedroom    Category = "Bedroom"
	CategoryDining     Category = "Dining"
	CategoryOffice     Category = "Office"
	CategoryOutdoor    Category = "Outdoor"
)

// DefaultProductImage is used when a product is added without an image.
const DefaultProductImage = "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=600&h=600&fit=crop"

// Categories returns the enumerated categories in display order.
func Categories() []Category {
	return []Category{
		CategoryLivingRoom,
		CategoryBedroom,
		CategoryDining,
		CategoryOffice,
		CategoryOutdoor,
	}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category belongs to the fixed set.
func (c Category) IsValid() bool {
	return slices.Contains(Categories(), c)
}

// Product is a catalog entry. Cart items and orders embed products by value.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Featured    bool     `json:"featured,omitempty"`
}

// ProductFields holds the admin-editable fields of a product.
type ProductFields struct {
	Name        string
	Price       float64
	Category    Category
	Description string
	Image       string
}

// Apply overwrites the editable fields, keeping the id and featured flag.
func (p *Product) Apply(fields ProductFields) {
	p.Name = fields.Name
	p.Price = fields.Price
	p.Category = fields.Category
	p.Description = fields.Description
	p.Image = fields.Image
}

// CloneProducts returns a copy of the list. Products hold only value fields,
// so copying the slice is enough to isolate it.
func CloneProducts(products []Product) []Product {
	if products == nil {
		return []Product{}
	}

	return slices.Clone(products)
}
