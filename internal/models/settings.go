package models

// Company is the freelancer's own identity, printed on contracts.
type Company struct {
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	// Logo is an opaque image reference (usually a data URL).
	Logo string `json:"logo"`
}

// CompanySettings is the per-user singleton settings document.
type CompanySettings struct {
	Company Company `json:"company"`

	// ContractTemplate is free text with {TOKEN} placeholders. Empty means the default template.
	ContractTemplate string `json:"contractTemplate"`
}
