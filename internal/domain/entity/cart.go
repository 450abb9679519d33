package entity

// CartLine is one (product, quantity) pairing in the shopping cart.
// At most one line exists per product id and Quantity is always >= 1;
// a quantity dropping to zero removes the line entirely.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns the line total using the current price. Promotion display
// is cosmetic; there is no separate price tier.
func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}
