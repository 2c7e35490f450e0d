package models

// Client is a customer of the freelancer.
type Client struct {
	// ID is the unique identifier for the client (UUID format).
	ID string `json:"id"`

	// Name is the display name used in messages and contracts.
	Name string `json:"name" validate:"required"`

	// Company is the client's company name, if any.
	Company string `json:"company,omitempty"`

	// CPF is the client's tax id (CPF or CNPJ), printed on contracts.
	CPF string `json:"cpf,omitempty"`

	// Email is optional but must be well formed when present.
	Email string `json:"email,omitempty" validate:"omitempty,email"`

	// Phone is required; its digits are used to build outbound message links.
	Phone string `json:"phone" validate:"required,hasdigit"`

	// CreatedAt is the Unix timestamp when the client was created.
	CreatedAt int64 `json:"createdAt"`
}
