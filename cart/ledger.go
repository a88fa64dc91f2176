package cart

import (
	"errors"

	"github.com/naxo-910/elsabor-api/catalog"
	"github.com/naxo-910/elsabor-api/models"
	"github.com/naxo-910/elsabor-api/storage"
)

// ErrBadQuantity is returned when an add is attempted with a non-positive
// quantity.
var ErrBadQuantity = errors.New("cart: quantity must be a positive integer")

// Ledger is the cart of one user: an ordered sequence of product+quantity
// lines, mirrored to durable storage on every mutation. Lines keep only the
// product id; product data is joined in from the catalog at read time, so a
// price change in the catalog is reflected immediately.
type Ledger struct {
	catalog *catalog.Store
	store   *storage.Store
	key     string
	lines   []models.CartLine
}

// NewLedger loads the user's cart from durable storage. A missing or corrupt
// record starts the cart empty.
func NewLedger(cat *catalog.Store, store *storage.Store, userID int) *Ledger {
	l := &Ledger{
		catalog: cat,
		store:   store,
		key:     storage.CartKey(userID),
	}
	l.load()
	return l
}

func (l *Ledger) load() {
	var entries []models.CartEntry
	ok, err := l.store.Get(l.key, &entries)
	if err != nil || !ok {
		return
	}
	for _, e := range entries {
		if e.Product.ID <= 0 || e.Quantity <= 0 {
			continue
		}
		l.lines = append(l.lines, models.CartLine{
			ProductID: e.Product.ID,
			Quantity:  e.Quantity,
		})
	}
}

// persist writes the full cart under its key, with products joined in so the
// durable record matches the documented layout.
func (l *Ledger) persist() error {
	return l.store.Put(l.key, l.Entries())
}

// AddItem adds quantity units of the product to the cart. If a line for the
// product already exists its quantity is incremented, so there is never more
// than one line per product id.
func (l *Ledger) AddItem(productID, quantity int) error {
	if quantity < 1 {
		return ErrBadQuantity
	}
	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			l.lines[i].Quantity += quantity
			return l.persist()
		}
	}
	l.lines = append(l.lines, models.CartLine{ProductID: productID, Quantity: quantity})
	return l.persist()
}

// SetQuantity sets a line's quantity. A quantity of zero or less removes the
// line; an unknown product id is a no-op.
func (l *Ledger) SetQuantity(productID, quantity int) error {
	for i := range l.lines {
		if l.lines[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
		} else {
			l.lines[i].Quantity = quantity
		}
		return l.persist()
	}
	return nil
}

// RemoveItem removes the line for the product if present.
func (l *Ledger) RemoveItem(productID int) error {
	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return l.persist()
		}
	}
	return nil
}

// Clear empties the cart.
func (l *Ledger) Clear() error {
	l.lines = nil
	return l.persist()
}

// Lines returns a copy of the raw ledger lines.
func (l *Ledger) Lines() []models.CartLine {
	out := make([]models.CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

// Entries joins every line against the live catalog. A line whose product was
// deleted joins to a zero-value product; the stock reconciler reports it as
// unavailable.
func (l *Ledger) Entries() []models.CartEntry {
	entries := make([]models.CartEntry, 0, len(l.lines))
	for _, line := range l.lines {
		p, err := l.catalog.FindByID(line.ProductID)
		if err != nil {
			p = models.Product{ID: line.ProductID}
		}
		entries = append(entries, models.CartEntry{Product: p, Quantity: line.Quantity})
	}
	return entries
}

// Total is the sum of price×quantity over current lines, recomputed from the
// live catalog on every call.
func (l *Ledger) Total() float64 {
	var total float64
	for _, e := range l.Entries() {
		total += e.LineTotal()
	}
	return total
}

// ItemCount is the sum of quantities over current lines, used for the cart
// badge.
func (l *Ledger) ItemCount() int {
	var count int
	for _, line := range l.lines {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (l *Ledger) IsEmpty() bool {
	return len(l.lines) == 0
}
