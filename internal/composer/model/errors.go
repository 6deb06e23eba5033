package model

import "errors"

var (
	// ErrComposerNotFound indicates that the requested composer does not exist.
	ErrComposerNotFound = errors.New("composer not found")
	// ErrInvalidComposerID indicates that the provided composer ID is invalid (e.g., empty).
	ErrInvalidComposerID = errors.New("invalid composer ID")
	// ErrStoreFailure indicates that the document store reported an error.
	ErrStoreFailure = errors.New("store failure")
)
