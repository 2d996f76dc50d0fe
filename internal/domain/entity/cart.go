// Package entity contains the core business objects of the project.
package entity

// CartItem pairs a product snapshot with a quantity. The product is copied at
// add time, so later catalog edits never reach items already in a cart.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns price multiplied by quantity.
func (i CartItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Cart is the ordered list of items for the active client.
// Invariants: at most one item per product id, every quantity >= 1.
type Cart struct {
	Items []CartItem `json:"items"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

func (c *Cart) indexOf(productID int64) int {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			return i
		}
	}

	return -1
}

// Add increments the quantity of an existing item or appends a new one with quantity 1.
func (c *Cart) Add(product Product) {
	if i := c.indexOf(product.ID); i >= 0 {
		c.Items[i].Quantity++

		return
	}
	c.Items = append(c.Items, CartItem{Product: product, Quantity: 1})
}

// Remove deletes the item for productID. It reports whether anything was removed.
func (c *Cart) Remove(productID int64) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)

	return true
}

// SetQuantity sets the quantity of an existing item. A quantity of zero or less
// removes the item. It reports whether the cart changed.
func (c *Cart) SetQuantity(productID int64, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.Items[i].Quantity = quantity

	return true
}

// Subtract takes the quantities of items off the matching lines. Lines that
// drop to zero are removed; products not in the cart are ignored. It reports
// whether the cart changed.
func (c *Cart) Subtract(items []CartItem) bool {
	changed := false
	for _, item := range items {
		i := c.indexOf(item.Product.ID)
		if i < 0 || item.Quantity <= 0 {
			continue
		}
		changed = true
		if left := c.Items[i].Quantity - item.Quantity; left > 0 {
			c.Items[i].Quantity = left

			continue
		}
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}

	return changed
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount is the sum of all quantities, not the number of distinct items.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// Subtotal is the sum of price times quantity over all items.
func (c *Cart) Subtotal() float64 {
	var subtotal float64
	for _, item := range c.Items {
		subtotal += item.LineTotal()
	}

	return subtotal
}

// Snapshot returns a deep copy of the items.
func (c *Cart) Snapshot() []CartItem {
	return CloneItems(c.Items)
}

// Normalize re-establishes the cart invariants on data read back from storage:
// duplicate product ids are merged and non-positive quantities are dropped.
func (c *Cart) Normalize() {
	merged := make([]CartItem, 0, len(c.Items))
	positions := make(map[int64]int, len(c.Items))
	for _, item := range c.Items {
		if item.Quantity <= 0 {
			continue
		}
		if pos, ok := positions[item.Product.ID]; ok {
			merged[pos].Quantity += item.Quantity

			continue
		}
		positions[item.Product.ID] = len(merged)
		merged = append(merged, item)
	}
	c.Items = merged
}

// CloneItems copies a list of cart items.
func CloneItems(items []CartItem) []CartItem {
	cloned := make([]CartItem, len(items))
	copy(cloned, items)

	return cloned
}
