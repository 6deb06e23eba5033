package model

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	Name    string   `json:"name"   binding:"required"`
	Mascot  string   `json:"mascot" binding:"required"`
	Players []Player `json:"players"`
}

// UpdateTeamRequest represents a partial update of a team.
// Nil fields are left unchanged; the player roster is replaced wholesale.
type UpdateTeamRequest struct {
	Name    *string   `json:"name"`
	Mascot  *string   `json:"mascot"`
	Players *[]Player `json:"players"`
}

// AssignPlayerRequest represents the request to append a player to a team.
type AssignPlayerRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName"  binding:"required"`
	Salary    float64 `json:"salary"`
}
