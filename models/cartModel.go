package models

// Cart maps a pastry id (string-keyed, as stored in the session) to the
// desired quantity. It lives only in the cookie session and has no identity
// beyond it.
type Cart map[string]int

// Add increments the quantity for a pastry, inserting the entry if absent.
// Callers validate that quantity is a positive integer before calling.
func (c Cart) Add(pastryID string, quantity int) {
	c[pastryID] += quantity
}

// SetQuantity sets an absolute quantity. A quantity of zero or less removes
// the entry, so deleting an item is the same as setting it to zero.
func (c Cart) SetQuantity(pastryID string, quantity int) {
	if quantity <= 0 {
		delete(c, pastryID)
		return
	}
	c[pastryID] = quantity
}

// Remove drops the entry if present. Removing an absent entry is a no-op.
func (c Cart) Remove(pastryID string) {
	delete(c, pastryID)
}

// TotalQuantity is the number of units across all entries.
func (c Cart) TotalQuantity() int {
	total := 0
	for _, quantity := range c {
		total += quantity
	}
	return total
}
