package errors

import (
	// Go Internal Packages
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies an error by who has to act on it.
type Kind uint8

const (
	Other       Kind = iota // unclassified
	Invalid                 // user input failed validation
	Unsupported             // enum value outside its closed set
	Submission              // backend rejected or could not receive a transaction
	DataLoad                // initial catalog fetch failed
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Unsupported:
		return "unsupported"
	case Submission:
		return "submission"
	case DataLoad:
		return "data_load"
	default:
		return "other"
	}
}

// Error is the error type returned by every package of this module. Message is
// always suitable for display to an operator.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Status  int
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Code when the target carries one, otherwise on Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != "" {
		return t.Code == e.Code
	}
	return t.Kind == e.Kind
}

// E builds an *Error of the given kind.
func E(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or Other.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return Other
}

// Is and As re-export the standard helpers so callers need a single import.
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// ValidationErrors collects per-field problems and reports them as one error.
type ValidationErrors struct {
	fields map[string][]string
}

// ValidationErrs returns an empty collector.
func ValidationErrs() *ValidationErrors {
	return &ValidationErrors{fields: make(map[string][]string)}
}

// Add records a problem for field.
func (v *ValidationErrors) Add(field, msg string) {
	v.fields[field] = append(v.fields[field], msg)
}

// Err returns nil when nothing was added.
func (v *ValidationErrors) Err() error {
	if len(v.fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(v.fields))
	for k := range v.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, strings.Join(v.fields[k], ", ")))
	}
	return &Error{Kind: Invalid, Code: "validation_failed", Message: strings.Join(parts, "; "), Details: v.fields}
}
