package customers

import "github.com/AMUDHAVALLI/Billing/internal/masterdata/shared"

type CreateCustomerRequest struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Address   *string `json:"address,omitempty" validate:"omitempty,max=500"`
	City      *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State     string  `json:"state" validate:"required,max=100"`
	StateCode *string `json:"state_code,omitempty" validate:"omitempty,len=2,numeric"`
	GSTIN     *string `json:"gstin,omitempty" validate:"omitempty,len=15"`
	Contact   *string `json:"contact,omitempty" validate:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type UpdateCustomerRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Address   *string `json:"address,omitempty" validate:"omitempty,max=500"`
	City      *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State     *string `json:"state,omitempty" validate:"omitempty,max=100"`
	StateCode *string `json:"state_code,omitempty" validate:"omitempty,len=2,numeric"`
	GSTIN     *string `json:"gstin,omitempty" validate:"omitempty,len=15"`
	Contact   *string `json:"contact,omitempty" validate:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// ListCustomersResponse is the paginated list payload.
type ListCustomersResponse struct {
	Customers  []Customer        `json:"customers"`
	Pagination shared.Pagination `json:"pagination"`
}
