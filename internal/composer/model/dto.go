package model

// CreateComposerRequest represents the request to create a composer.
type CreateComposerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"  binding:"required"`
}

// UpdateComposerRequest represents a partial update of a composer.
// Nil fields are left unchanged.
type UpdateComposerRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}
