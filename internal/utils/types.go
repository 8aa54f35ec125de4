package util

import (
	"errors"
	"fmt"
)

// PageID identifies a requested page. Equality is value equality.
type PageID uint64

// ErrorKind classifies simulation failures.
type ErrorKind int

const (
	// ErrKindConfiguration is a bad capacity or policy, reported before the run starts.
	ErrKindConfiguration ErrorKind = iota
	// ErrKindSequence is an empty or malformed access sequence.
	ErrKindSequence
	// ErrKindInvariant is a frame table / replacer disagreement. Always fatal.
	ErrKindInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindConfiguration:
		return "configuration"
	case ErrKindSequence:
		return "sequence"
	case ErrKindInvariant:
		return "invariant"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// SimError is a typed simulation failure.
type SimError struct {
	Kind    ErrorKind
	Op      string
	Message string
	Err     error
}

func (e *SimError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = fmt.Sprintf("%s (caused by: %v)", msg, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("pagesim %s error: %s: %s", e.Kind, e.Op, msg)
	}
	return fmt.Sprintf("pagesim %s error: %s", e.Kind, msg)
}

func (e *SimError) Unwrap() error {
	return e.Err
}

// Is matches another *SimError by kind, so errors.Is(err, KindError(ErrKindInvariant)) works.
func (e *SimError) Is(target error) bool {
	if t, ok := target.(*SimError); ok {
		return t.Op == "" && t.Message == "" && t.Err == nil && e.Kind == t.Kind
	}
	return false
}

// NewSimError creates a new simulation error
func NewSimError(kind ErrorKind, op, message string, cause error) *SimError {
	return &SimError{
		Kind:    kind,
		Op:      op,
		Message: message,
		Err:     cause,
	}
}

// KindError returns a bare error of the given kind for use with errors.Is.
func KindError(kind ErrorKind) error {
	return &SimError{Kind: kind}
}

// Classify wraps err into a SimError of the kind implied by its sentinel.
// Errors that already carry a kind are returned unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *SimError
	if errors.As(err, &se) {
		return err
	}

	kind := ErrKindInvariant
	switch {
	case errors.Is(err, ErrInvalidCapacity), errors.Is(err, ErrInvalidPolicy):
		kind = ErrKindConfiguration
	case errors.Is(err, ErrEmptySequence), errors.Is(err, ErrInvalidAccess):
		kind = ErrKindSequence
	}
	return NewSimError(kind, op, "", err)
}
