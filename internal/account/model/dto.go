package model

// SignupRequest represents the request to register a new account.
type SignupRequest struct {
	UserName     string    `json:"userName" binding:"required"`
	Password     string    `json:"password" binding:"required"`
	EmailAddress EmailList `json:"emailAddress"`
}

// SignupResponse represents the response after a successful signup.
// No session artifact is issued.
type SignupResponse struct {
	Message string  `json:"message"`
	Account Account `json:"account"`
}

// LoginRequest represents the request to verify account credentials.
type LoginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response after a successful credential
// check. Login is stateless; no token or cookie is issued.
type LoginResponse struct {
	Message string `json:"message"`
}
