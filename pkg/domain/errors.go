package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrInvalidReference is returned when an entity points at a record that does not exist,
	// or when removing a record that is still referenced
	ErrInvalidReference = errors.New("invalid reference")
	// ErrOwnerHasAccounts is returned when deleting an owner that still has accounts
	ErrOwnerHasAccounts = errors.New("cannot delete owner. It has related accounts. Delete those accounts first")
)
