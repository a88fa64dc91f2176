package models

import "time"

// CheckoutForm holds the shipping and payment fields submitted at checkout.
// The card number and CVV are validated by shape only; no real payment data
// ever leaves the process.
type CheckoutForm struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Commune    string `json:"commune"`
	CardNumber string `json:"card_number"`
	CVV        string `json:"cvv"`
}

// OrderSummary is the snapshot written once per checkout attempt, for display
// on the confirmation or error page. It is derived state, not canonical
// storage.
type OrderSummary struct {
	OrderNumber int          `json:"order_number"`
	Reference   string       `json:"reference"`
	Cart        []CartEntry  `json:"cart"`
	Total       float64      `json:"total"`
	FormData    CheckoutForm `json:"form_data"`
	Paid        bool         `json:"paid"`
	PlacedAt    time.Time    `json:"placed_at"`
}
