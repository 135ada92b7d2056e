package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound        = errors.New("entity not found")
	ErrAlreadyExists   = errors.New("entity already exists")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")

	// Reading proxy errors
	ErrAINotConfigured = errors.New("ai provider not configured")
	ErrAIUnavailable   = errors.New("ai provider call failed")
)
