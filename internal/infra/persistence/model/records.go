// Package model holds the persisted shapes of the client records. They are
// decoupled from the domain entities so the stored JSON layout stays stable.
package model

// Record keys, relative to the store namespace.
const (
	SessionKey  = "user"
	RegistryKey = "users"
	CartKey     = "cart"
	OrdersKey   = "orders"
	CatalogKey  = "products"
)
