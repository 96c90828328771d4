package record

import (
	"errors"
	"fmt"
)

var (
	// ErrNotStruct is returned when a prototype is not a struct or a pointer
	// to one.
	ErrNotStruct = errors.New("record type must be a struct")
	// ErrDuplicatePrimaryKey is returned when more than one field is marked
	// as primary key.
	ErrDuplicatePrimaryKey = errors.New("more than one primary key field")
	// ErrAlreadyRegistered is returned when a type id or Go type is
	// registered twice.
	ErrAlreadyRegistered = errors.New("record type already registered")
	// ErrNotRegistered is returned by lookups of unknown types.
	ErrNotRegistered = errors.New("record type not registered")
)

// RegistrationError describes a failed registration.
type RegistrationError struct {
	TypeID string
	Field  string
	parent error
}

func errRegistration(typeID, field string, parent error) error {
	return RegistrationError{
		TypeID: typeID,
		Field:  field,
		parent: parent,
	}
}

// Error returns a string representation of the error.
func (e RegistrationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("failed to register %q: %s", e.TypeID, e.parent)
	}

	return fmt.Sprintf("failed to register %q, field %q: %s", e.TypeID, e.Field, e.parent)
}

// Unwrap returns the underlying error.
func (e RegistrationError) Unwrap() error {
	return e.parent
}

func errNotRegistered(typeID string) error {
	return fmt.Errorf("%w: %q", ErrNotRegistered, typeID)
}
