package task

import "errors"

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionExists   = errors.New("description already exists")
	ErrIDMismatch          = errors.New("id in path does not match id in body")
)

// IsValidation reports whether err is a caller input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrDescriptionRequired) ||
		errors.Is(err, ErrDescriptionExists) ||
		errors.Is(err, ErrIDMismatch)
}
