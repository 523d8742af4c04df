// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound     = errors.New("not found")
	ErrStoreCorrupt = errors.New("store entry corrupted")

	// Input errors.
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDate     = errors.New("invalid date")
	ErrIndexOutOfRange = errors.New("index out of range")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError pairs a message fit to print at the terminal with the underlying
// cause, kept for logs and errors.Is checks.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError wraps err with a message meant for the person at the terminal.
// A nil err is fine when there is no deeper cause to carry.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
