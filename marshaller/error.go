package marshaller

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTarget is returned when a decode target is not a non-nil
	// pointer to a struct.
	ErrInvalidTarget = errors.New("target must be a non-nil pointer to a struct")
	// ErrNilRecord is returned when a nil record is encoded.
	ErrNilRecord = errors.New("nil record")
	// ErrUnexportedField is returned when a registered field cannot be
	// accessed through reflection.
	ErrUnexportedField = errors.New("field is not exported")
	// ErrUnknownEnumConstant is returned when wire text names no constant of
	// the field's enumeration.
	ErrUnknownEnumConstant = errors.New("unknown enum constant")
	// ErrTypeMismatch is returned when a wire value cannot be stored in a
	// field of the declared type.
	ErrTypeMismatch = errors.New("wire value does not match field type")
)

// MarshalError represents an error when marshalling fails.
type MarshalError struct {
	Codec  string
	parent error
}

func errMarshal(codec string, parent error) error {
	if parent == nil {
		return nil
	}

	return MarshalError{Codec: codec, parent: parent}
}

// Unwrap returns the underlying error that caused the marshalling failure.
func (e MarshalError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the marshalling error.
func (e MarshalError) Error() string {
	return fmt.Sprintf("failed to marshal %s: %s", e.Codec, e.parent)
}

// UnmarshalError represents an error when unmarshalling fails.
type UnmarshalError struct {
	Codec  string
	parent error
}

func errUnmarshal(codec string, parent error) error {
	if parent == nil {
		return nil
	}

	return UnmarshalError{Codec: codec, parent: parent}
}

// Unwrap returns the underlying error that caused the unmarshalling failure.
func (e UnmarshalError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the unmarshalling error.
func (e UnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal %s: %s", e.Codec, e.parent)
}

// ReflectionAccessError is returned when a registered field of a record
// cannot be read or written.
type ReflectionAccessError struct {
	TypeID string
	Field  string
	parent error
}

func errReflectionAccess(typeID, field string, parent error) error {
	return ReflectionAccessError{TypeID: typeID, Field: field, parent: parent}
}

// Unwrap returns the underlying error.
func (e ReflectionAccessError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the error.
func (e ReflectionAccessError) Error() string {
	return fmt.Sprintf("cannot access field %q of %q: %s", e.Field, e.TypeID, e.parent)
}

// PrimaryKeyNotFoundError is returned when a primary key is set on a type
// that declares none.
type PrimaryKeyNotFoundError struct {
	TypeID string
}

func errPrimaryKeyNotFound(typeID string) error {
	return PrimaryKeyNotFoundError{TypeID: typeID}
}

// Error returns a string representation of the error.
func (e PrimaryKeyNotFoundError) Error() string {
	return fmt.Sprintf("type %q declares no primary key", e.TypeID)
}

// FieldError describes a single field that could not be decoded.
type FieldError struct {
	Field        string
	DeclaredType string
	ReceivedType string
	parent       error
}

func errField(field, declared, received string, parent error) error {
	return FieldError{
		Field:        field,
		DeclaredType: declared,
		ReceivedType: received,
		parent:       parent,
	}
}

// Unwrap returns the underlying error.
func (e FieldError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s couldn't be set, field type was %s but got %s: %s",
		e.Field, e.DeclaredType, e.ReceivedType, e.parent)
}
