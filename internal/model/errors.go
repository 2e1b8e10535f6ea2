package model

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned when a closed enumeration is constructed
// from text that names none of its members.
var ErrUnknownVariant = errors.New("unknown variant")

func parseErr(what, text string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownVariant, what, text)
}
