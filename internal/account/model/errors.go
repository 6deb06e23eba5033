package model

import "errors"

var (
	// ErrUsernameTaken indicates a signup attempt with an already
	// registered username.
	ErrUsernameTaken = errors.New("username already in use")
	// ErrInvalidCredentials indicates a login failure. Unknown usernames
	// and wrong passwords are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username and/or password")
	// ErrAccountNotFound indicates that the requested account does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrStoreFailure indicates that the document store reported an error.
	ErrStoreFailure = errors.New("store failure")
)
