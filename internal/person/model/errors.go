package model

import "errors"

var (
	// ErrPersonNotFound indicates that the requested person does not exist.
	ErrPersonNotFound = errors.New("person not found")
	// ErrInvalidPersonID indicates that the provided person ID is invalid (e.g., empty).
	ErrInvalidPersonID = errors.New("invalid person ID")
	// ErrStoreFailure indicates that the document store reported an error.
	ErrStoreFailure = errors.New("store failure")
)
