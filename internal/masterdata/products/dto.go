package products

import "github.com/AMUDHAVALLI/Billing/internal/masterdata/shared"

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	HSNCode     *string  `json:"hsn_code,omitempty" validate:"omitempty,max=10"`
	Unit        *string  `json:"unit,omitempty" validate:"omitempty,max=20"`
	BasePrice   float64  `json:"base_price" validate:"gte=0"`
	GSTRate     *float64 `json:"gst_rate,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	HSNCode     *string  `json:"hsn_code,omitempty" validate:"omitempty,max=10"`
	Unit        *string  `json:"unit,omitempty" validate:"omitempty,max=20"`
	BasePrice   *float64 `json:"base_price,omitempty" validate:"omitempty,gte=0"`
	GSTRate     *float64 `json:"gst_rate,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// ListProductsResponse is the paginated list payload.
type ListProductsResponse struct {
	Products   []Product         `json:"products"`
	Pagination shared.Pagination `json:"pagination"`
}
