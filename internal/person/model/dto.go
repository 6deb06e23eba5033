package model

// CreatePersonRequest represents the request to create a person.
type CreatePersonRequest struct {
	FirstName  string      `json:"firstName" binding:"required"`
	LastName   string      `json:"lastName"  binding:"required"`
	BirthDate  string      `json:"birthDate"`
	Roles      []Role      `json:"roles"`
	Dependents []Dependent `json:"dependents"`
}

// UpdatePersonRequest represents a partial update of a person.
// Nil fields are left unchanged; embedded collections are replaced wholesale.
type UpdatePersonRequest struct {
	FirstName  *string      `json:"firstName"`
	LastName   *string      `json:"lastName"`
	BirthDate  *string      `json:"birthDate"`
	Roles      *[]Role      `json:"roles"`
	Dependents *[]Dependent `json:"dependents"`
}
