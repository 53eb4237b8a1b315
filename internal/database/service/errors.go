package service

import "errors"

// Service errors
var (
	ErrCharacterNotFound = errors.New("character not found")
	ErrEmployeeNotFound  = errors.New("employee not found")
)

// ValidationError carries the user-facing reason a request was rejected
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func reject(reason string) error {
	return &ValidationError{Reason: reason}
}
