package service

// IDGenerator hands out unique numeric identifiers for accounts, products and orders.
type IDGenerator interface {
	NextID() int64
}
