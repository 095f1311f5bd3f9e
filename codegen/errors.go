package codegen

import (
	"errors"
	"fmt"
)

// ErrDefinitionsMissing is returned when the definitions file does not
// exist.
var ErrDefinitionsMissing = errors.New("definitions file does not exist")

// Error represents a failure to generate code from the definitions.
type Error struct {
	Kind  ErrorKind
	Value string // The function, signature, file or name involved
}

// ErrorKind categorizes generation errors.
type ErrorKind int

const (
	// ErrKindInvalidName indicates a function or component name that is not
	// a C identifier.
	ErrKindInvalidName ErrorKind = iota
	// ErrKindFunctionNotFound indicates no declaration macro names the
	// function.
	ErrKindFunctionNotFound
	// ErrKindInvalidSignature indicates a declaration with fewer than two
	// parts.
	ErrKindInvalidSignature
	// ErrKindMarkerNotFound indicates a file lacks its insertion point.
	ErrKindMarkerNotFound
)

func (e *Error) Error() string {
	switch e.Kind {
	case ErrKindInvalidName:
		return fmt.Sprintf("invalid name '%s'", e.Value)
	case ErrKindFunctionNotFound:
		return fmt.Sprintf("function not found in definitions: %s", e.Value)
	case ErrKindInvalidSignature:
		return fmt.Sprintf("invalid function signature: %s", e.Value)
	case ErrKindMarkerNotFound:
		return fmt.Sprintf("insertion point not found in '%s'", e.Value)
	default:
		return fmt.Sprintf("code generation error: %s", e.Value)
	}
}

// Is makes errors.Is match any *Error of the same Kind, so callers can test
// for a kind with a zero-Value target such as &Error{Kind: ErrKindMarkerNotFound}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && (t.Value == "" || t.Value == e.Value)
}

func newInvalidNameError(name string) error {
	return &Error{Kind: ErrKindInvalidName, Value: name}
}

func newFunctionNotFoundError(function string) error {
	return &Error{Kind: ErrKindFunctionNotFound, Value: function}
}

func newInvalidSignatureError(signature string) error {
	return &Error{Kind: ErrKindInvalidSignature, Value: signature}
}

func newMarkerNotFoundError(path string) error {
	return &Error{Kind: ErrKindMarkerNotFound, Value: path}
}
