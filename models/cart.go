package models

// CartLine is what the ledger actually keeps: a product reference plus the
// requested quantity. The product itself is joined in from the catalog at
// read time so lines never go stale.
type CartLine struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// CartEntry is the rendered and persisted form of a line, with the product
// joined in. The durable cart record is a JSON array of these.
type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is the entry's contribution to the cart total.
func (e CartEntry) LineTotal() float64 {
	return e.Product.Price * float64(e.Quantity)
}
