package addressbook

import (
	"errors"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Error kinds returned by the core. Callers classify them with errors.Is;
// the concrete errors wrap the offending input.
var (
	ErrInvalidName  = errors.New(config.ErrInvalidName)
	ErrInvalidPhone = errors.New(config.ErrInvalidPhone)
	ErrInvalidDate  = errors.New(config.ErrInvalidDate)
	ErrNotFound     = errors.New(config.ErrNotFound)
)

// IsValidation reports whether err was caused by malformed user input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidPhone) ||
		errors.Is(err, ErrInvalidDate)
}
