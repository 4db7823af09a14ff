package webstore

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidPrice    = errors.New("unit price must not be negative")
	ErrInvalidDiscount = errors.New("discount must not be negative")
	ErrMissingField    = errors.New("required field is missing")
)

// ReferentialIntegrityError reports a foreign key with no matching target.
// It signals corrupt input data and is surfaced to the caller, never
// recovered from.
type ReferentialIntegrityError struct {
	Entity string // entity type holding the dangling reference
	Key    int    // key of the referencing entity
	Target string // referenced entity type
	Ref    int    // dangling key value
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("referential integrity: %s %d references missing %s %d",
		e.Entity, e.Key, e.Target, e.Ref)
}
