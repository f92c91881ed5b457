package customers

import "time"

// Customer is a buyer record. State, state code, and GSTIN feed the
// buyer side of jurisdiction resolution on invoices.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	City      *string   `json:"city,omitempty"`
	State     string    `json:"state"`
	StateCode *string   `json:"state_code,omitempty"`
	GSTIN     *string   `json:"gstin,omitempty"`
	Contact   *string   `json:"contact,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
