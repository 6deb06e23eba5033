package model

import "errors"

var (
	// ErrCustomerNotFound indicates that the requested customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrInvalidCustomerID indicates that the provided customer ID is invalid (e.g., empty).
	ErrInvalidCustomerID = errors.New("invalid customer ID")
	// ErrInvalidUserName indicates that the provided username is invalid (e.g., empty).
	ErrInvalidUserName = errors.New("invalid username")
	// ErrStoreFailure indicates that the document store reported an error.
	ErrStoreFailure = errors.New("store failure")
)
