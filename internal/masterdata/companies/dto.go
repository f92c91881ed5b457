package companies

type CreateCompanyRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Address       *string `json:"address,omitempty" validate:"omitempty,max=500"`
	City          *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State         string  `json:"state" validate:"required,max=100"`
	StateCode     *string `json:"state_code,omitempty" validate:"omitempty,len=2,numeric"`
	Pincode       *string `json:"pincode,omitempty" validate:"omitempty,len=6,numeric"`
	GSTIN         *string `json:"gstin,omitempty" validate:"omitempty,len=15"`
	PAN           *string `json:"pan,omitempty" validate:"omitempty,len=10"`
	Contact       *string `json:"contact,omitempty" validate:"omitempty,max=100"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	BankName      *string `json:"bank_name,omitempty" validate:"omitempty,max=100"`
	AccountNumber *string `json:"account_number,omitempty" validate:"omitempty,max=30"`
	IFSCCode      *string `json:"ifsc_code,omitempty" validate:"omitempty,len=11"`
	BankBranch    *string `json:"bank_branch,omitempty" validate:"omitempty,max=100"`
}

type UpdateCompanyRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Address       *string `json:"address,omitempty" validate:"omitempty,max=500"`
	City          *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State         *string `json:"state,omitempty" validate:"omitempty,max=100"`
	StateCode     *string `json:"state_code,omitempty" validate:"omitempty,len=2,numeric"`
	Pincode       *string `json:"pincode,omitempty" validate:"omitempty,len=6,numeric"`
	GSTIN         *string `json:"gstin,omitempty" validate:"omitempty,len=15"`
	PAN           *string `json:"pan,omitempty" validate:"omitempty,len=10"`
	Contact       *string `json:"contact,omitempty" validate:"omitempty,max=100"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	BankName      *string `json:"bank_name,omitempty" validate:"omitempty,max=100"`
	AccountNumber *string `json:"account_number,omitempty" validate:"omitempty,max=30"`
	IFSCCode      *string `json:"ifsc_code,omitempty" validate:"omitempty,len=11"`
	BankBranch    *string `json:"bank_branch,omitempty" validate:"omitempty,max=100"`
}
