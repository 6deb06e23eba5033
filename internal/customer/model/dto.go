package model

// CreateCustomerRequest represents the request to create a customer.
type CreateCustomerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"  binding:"required"`
	UserName  string `json:"userName"  binding:"required"`
}

// UpdateCustomerRequest represents a partial update of a customer.
// Nil fields are left unchanged; the invoice sequence is replaced wholesale.
type UpdateCustomerRequest struct {
	FirstName *string    `json:"firstName"`
	LastName  *string    `json:"lastName"`
	UserName  *string    `json:"userName"`
	Invoices  *[]Invoice `json:"invoices"`
}

// AddInvoiceRequest represents the request to append an invoice to
// a customer addressed by username.
type AddInvoiceRequest struct {
	Subtotal    float64    `json:"subtotal"`
	Tax         float64    `json:"tax"`
	DateCreated string     `json:"dateCreated"`
	DateShipped string     `json:"dateShipped"`
	LineItems   []LineItem `json:"lineItems"`
}
