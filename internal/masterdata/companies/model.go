package companies

import "time"

// Company is a seller profile whose state, state code, and GSTIN feed the
// jurisdiction side of every invoice it issues.
type Company struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Address       *string   `json:"address,omitempty"`
	City          *string   `json:"city,omitempty"`
	State         string    `json:"state"`
	StateCode     *string   `json:"state_code,omitempty"`
	Pincode       *string   `json:"pincode,omitempty"`
	GSTIN         *string   `json:"gstin,omitempty"`
	PAN           *string   `json:"pan,omitempty"`
	Contact       *string   `json:"contact,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	BankName      *string   `json:"bank_name,omitempty"`
	AccountNumber *string   `json:"account_number,omitempty"`
	IFSCCode      *string   `json:"ifsc_code,omitempty"`
	BankBranch    *string   `json:"bank_branch,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
