// Package entity contains the core business objects of the project.
package entity

import "strings"

// CatalogSource tags where an effective catalog comes from.
type CatalogSource int

const (
	// CatalogSourceSeed is the read-only catalog shipped with the release.
	CatalogSourceSeed CatalogSource = iota
	// CatalogSourceOverride is the persisted full copy written on the first admin edit.
	CatalogSourceOverride
)

// String returns the string representation of the CatalogSource.
func (s CatalogSource) String() string {
	if s == CatalogSourceOverride {
		return "override"
	}

	return "seed"
}

// Catalog is the effective product list together with its source.
type Catalog struct {
	Source   CatalogSource
	Products []Product
}

// Find returns the product with the given id.
func (c *Catalog) Find(id int64) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}

	return Product{}, false
}

// ProductFilter narrows a product listing. Zero values disable a criterion.
type ProductFilter struct {
	Query    string   // case-insensitive substring of the name
	Category Category // exact match
	MaxPrice float64  // inclusive upper bound
}

// Match reports whether p satisfies every enabled criterion.
func (f ProductFilter) Match(p Product) bool {
	if q := strings.TrimSpace(f.Query); q != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}

	return true
}
