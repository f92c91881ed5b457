package products

import "time"

// Product is a sellable good or service. The HSN code and GST rate
// default onto invoice lines that reference the product.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	HSNCode     *string   `json:"hsn_code,omitempty"`
	Unit        string    `json:"unit"`
	BasePrice   float64   `json:"base_price"`
	GSTRate     float64   `json:"gst_rate"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
