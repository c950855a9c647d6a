package service

import (
	"errors"
	"fmt"
)

// ErrInvalidInput wraps every validation failure caught before a store call,
// so transports can tell bad requests apart from store failures.
var ErrInvalidInput = errors.New("invalid input")

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
