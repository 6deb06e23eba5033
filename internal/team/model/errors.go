package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidTeamID indicates that the provided team ID is invalid (e.g., empty).
	ErrInvalidTeamID = errors.New("invalid team ID")
	// ErrStoreFailure indicates that the document store reported an error.
	ErrStoreFailure = errors.New("store failure")
)
