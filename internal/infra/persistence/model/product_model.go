package model

// ProductModel is a stored product, either in the catalog override or
// embedded as a snapshot in cart items and orders.
type ProductModel struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Featured    bool    `json:"featured,omitempty"`
}
