package models

// Product is a row in the catalog table. Prices are CLP, so whole values.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	IsOffer     bool    `json:"isOffer"`
	Description string  `json:"description"`
}

// ProductDraft carries admin input for creating a product. Price and Stock
// arrive as free-form strings from the admin form; invalid values coerce to 0.
type ProductDraft struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Stock       string `json:"stock"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	IsOffer     bool   `json:"isOffer"`
	Description string `json:"description"`
}

// ProductPatch carries admin input for a partial update. Nil fields are left
// untouched; provided Price/Stock strings go through the same coercion as
// ProductDraft.
type ProductPatch struct {
	Name        *string `json:"name"`
	Price       *string `json:"price"`
	Stock       *string `json:"stock"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	IsOffer     *bool   `json:"isOffer"`
	Description *string `json:"description"`
}
