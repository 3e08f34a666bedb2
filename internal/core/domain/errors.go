package domain

import "errors"

// Domain errors shared across packages.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the provided input failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrParameterNotFound indicates a node parameter is absent for the
	// requested item index and no default was given.
	ErrParameterNotFound = errors.New("parameter not found")
)
