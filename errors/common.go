package errors

import (
	// Go Internal Packages
	"fmt"
	"net/http"
)

var (
	ErrAmountNotPositive = &Error{
		Kind:    Invalid,
		Code:    "amount_not_positive",
		Message: "Validation failed: Amount must be greater than 0.",
	}
	ErrIncompleteCardDetails = &Error{
		Kind:    Invalid,
		Code:    "incomplete_card_details",
		Message: "Validation failed: Complete credit card details are required for manual transaction.",
	}
	ErrNoReaderSelected = &Error{
		Kind:    Invalid,
		Code:    "no_reader_selected",
		Message: "Validation failed: A reader must be selected for reader transaction.",
	}
	ErrReaderNotAtLocation = &Error{
		Kind:    Invalid,
		Code:    "reader_not_at_location",
		Message: "The selected reader does not belong to the selected location.",
	}
	ErrUnknownLocation = &Error{
		Kind:    Invalid,
		Code:    "unknown_location",
		Message: "The selected location does not exist.",
	}
	ErrSubmissionInProgress = &Error{
		Kind:    Invalid,
		Code:    "submission_in_progress",
		Message: "A transaction is already being submitted.",
	}
	ErrUnsupportedMethod = &Error{Kind: Unsupported, Code: "unsupported_method"}
)

// UnsupportedMethodErr reports a payment or transaction method outside its enum.
func UnsupportedMethodErr(what string, method any) error {
	return &Error{
		Kind:    Unsupported,
		Code:    ErrUnsupportedMethod.Code,
		Message: fmt.Sprintf("Unsupported %s method: %v", what, method),
	}
}

// SubmissionErr wraps a backend failure with its transport status and details.
func SubmissionErr(status int, msg string, details any, err error) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Error{Kind: Submission, Code: "submission_failed", Message: msg, Status: status, Details: details, Err: err}
}

// DataLoadErr wraps a failure of the initial catalog fetch.
func DataLoadErr(err error) error {
	return &Error{Kind: DataLoad, Code: "data_load_failed", Message: "Error fetching transaction data", Err: err}
}

// ValidationFailedErr prefixes a field validation summary for display.
func ValidationFailedErr(err error) error {
	return E(Invalid, "Validation failed: "+err.Error(), err)
}

// FieldErr returns a display message for a single form field.
func FieldErr(msg string) error {
	return &Error{Kind: Invalid, Code: "invalid_field", Message: msg}
}
