package model

import "time"

// CartItemModel is a stored cart line.
type CartItemModel struct {
	Product  ProductModel `json:"product"`
	Quantity int          `json:"quantity"`
}

// OrderModel is one entry of the persisted order list.
type OrderModel struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"userId"`
	Items         []CartItemModel `json:"items"`
	Total         float64         `json:"total"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	Date          time.Time       `json:"date"`
	Address       string          `json:"address"`
}
