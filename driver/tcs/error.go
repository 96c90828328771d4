package tcs

import (
	"fmt"
)

// DecodingError represents an error that occurs during decoding operations.
type DecodingError struct {
	ObjectType string
	Text       string
	Err        error
}

// Error returns the error message.
func (e DecodingError) Error() string {
	suffix := e.ObjectType
	if e.Text != "" {
		suffix = fmt.Sprintf("%s, %s", suffix, e.Text)
	}

	return fmt.Sprintf("failed to decode %s: %s", suffix, e.Err)
}

func (e DecodingError) Unwrap() error {
	return e.Err
}

// NewResponseDecodingError returns a new response decoding error.
func NewResponseDecodingError(function string, err error) error {
	if err == nil {
		return nil
	}

	return DecodingError{
		ObjectType: "response",
		Text:       function,
		Err:        err,
	}
}

// EncodingError represents an error that occurs during encoding operations.
type EncodingError struct {
	ObjectType string
	Text       string
	Err        error
}

// Error returns the error message.
func (e EncodingError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("failed to encode %s: %s", e.ObjectType, e.Err)
	}

	return fmt.Sprintf("failed to encode %s, %s: %s", e.ObjectType, e.Text, e.Err)
}

func (e EncodingError) Unwrap() error {
	return e.Err
}

// NewRequestEncodingError returns a new request encoding error.
func NewRequestEncodingError(text string, err error) error {
	if err == nil {
		return nil
	}

	return EncodingError{
		ObjectType: "request",
		Text:       text,
		Err:        err,
	}
}
