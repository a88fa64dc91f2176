package stock

import (
	"fmt"

	"github.com/naxo-910/elsabor-api/catalog"
	"github.com/naxo-910/elsabor-api/models"
)

// Status describes one cart line checked against the catalog's current stock,
// not the quantity captured when the line was added.
type Status struct {
	ProductID      int    `json:"product_id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	AvailableStock int    `json:"available_stock"`
	IsOverStock    bool   `json:"is_over_stock"`
	CanIncrement   bool   `json:"can_increment"`
	IsAvailable    bool   `json:"is_available"`
}

// Reconciler cross-checks cart quantities against live catalog stock. It has
// no state of its own.
type Reconciler struct {
	catalog *catalog.Store
}

func New(cat *catalog.Store) *Reconciler {
	return &Reconciler{catalog: cat}
}

// LineStatus derives the availability flags for a single line. A product that
// no longer exists has zero available stock.
func (r *Reconciler) LineStatus(line models.CartLine) Status {
	st := Status{
		ProductID: line.ProductID,
		Name:      fmt.Sprintf("product #%d", line.ProductID),
		Quantity:  line.Quantity,
	}
	if p, err := r.catalog.FindByID(line.ProductID); err == nil {
		st.Name = p.Name
		st.AvailableStock = p.Stock
	}
	st.IsOverStock = line.Quantity > st.AvailableStock
	st.CanIncrement = line.Quantity < st.AvailableStock
	st.IsAvailable = st.AvailableStock > 0
	return st
}

// Annotate returns the status of every line, in cart order.
func (r *Reconciler) Annotate(lines []models.CartLine) []Status {
	out := make([]Status, 0, len(lines))
	for _, line := range lines {
		out = append(out, r.LineStatus(line))
	}
	return out
}

// HasAnyStockIssue reports whether any line is over-stock or unavailable.
// Checkout submission is gated on this.
func (r *Reconciler) HasAnyStockIssue(lines []models.CartLine) bool {
	for _, line := range lines {
		st := r.LineStatus(line)
		if st.IsOverStock || !st.IsAvailable {
			return true
		}
	}
	return false
}

// Issues returns one message per offending line, naming the product and the
// shortfall, for display to the user.
func (r *Reconciler) Issues(lines []models.CartLine) []string {
	var out []string
	for _, line := range lines {
		st := r.LineStatus(line)
		switch {
		case !st.IsAvailable:
			out = append(out, fmt.Sprintf("%s is no longer available", st.Name))
		case st.IsOverStock:
			out = append(out, fmt.Sprintf("%s: requested %d, only %d in stock", st.Name, st.Quantity, st.AvailableStock))
		}
	}
	return out
}
