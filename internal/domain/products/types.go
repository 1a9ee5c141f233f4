package products

import "time"

// Categories for the café POS menu.
const (
	CategoryDrink = "drink"
	CategoryFood  = "food"
	CategoryMerch = "merch"
)

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty" swaggertype:"string"`
	PriceCents  int64     `json:"price_cents"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
