package domain

import "time"

// Cart is the per-user cart document. Version increments on every persisted
// write and is checked by the repository on write, so a concurrent writer
// cannot silently overwrite another writer's update.
type Cart struct {
	UserID    string     `json:"userId"`
	Lines     []CartLine `json:"cartItems"`
	Version   int64      `json:"-"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartLine is one (product, quantity) pair. Lines are unique by ProductID;
// a line whose quantity would reach zero is removed from the cart instead.
type CartLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// LineFor returns the index of the line holding productID, or -1.
func (c Cart) LineFor(productID string) int {
	for i, line := range c.Lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}
