package services

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrClosed            = errors.New("restaurant is closed")
	ErrAlreadyRated      = errors.New("order already rated")
	ErrOrderNotFound     = errors.New("order not found")
	ErrItemNotFound      = errors.New("menu item not found")
	ErrEntryNotFound     = errors.New("cart item not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError lista os campos ou grupos que não passaram na validação.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

// AsValidation unwraps err into a *ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
