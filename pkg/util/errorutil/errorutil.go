package util

import (
	"errors"
	"fmt"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, Details: details}
}

// NewPermissionDenied reports a non-admin invoking an admin-only action.
func NewPermissionDenied(message string) error {
	return NewDomainError("PERMISSION_DENIED", message, nil)
}

// NewAlreadyOpen reports a duplicate ticket for the requesting user.
func NewAlreadyOpen() error {
	return NewDomainError("ALREADY_OPEN", "you already have an open ticket", nil)
}

// NewNotATicketChannel reports a close request outside a ticket channel.
func NewNotATicketChannel() error {
	return NewDomainError("NOT_A_TICKET_CHANNEL", "this isn't a ticket channel", nil)
}

// NewProvisioningFailure wraps a platform call failure during ticket creation.
func NewProvisioningFailure(message string, err error) error {
	return &DomainError{Code: "PROVISIONING_FAILURE", Message: message, Err: err}
}

// NewArchiveFailure wraps a transcript write or upload failure.
func NewArchiveFailure(message string, err error) error {
	return &DomainError{Code: "ARCHIVE_FAILURE", Message: message, Err: err}
}

// NewConfigIOFailure wraps a guild configuration store read/write failure.
func NewConfigIOFailure(message string, err error) error {
	return &DomainError{Code: "CONFIG_IO_FAILURE", Message: message, Err: err}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "internal error",
		Err:     err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "internal error",
		Err:     err,
	}
}

// UserMessage returns the reply text shown to the triggering user.
func UserMessage(err error) string {
	domainErr := ToDomainError(err)
	if domainErr == nil {
		return ""
	}
	switch domainErr.Code {
	case "INTERNAL_ERROR", "PROVISIONING_FAILURE":
		return "❌ Something went wrong, please try again later."
	default:
		return "❌ " + domainErr.Message
	}
}

// HasCode reports whether err carries the given domain error code.
func HasCode(err error, code string) bool {
	domainErr := ToDomainError(err)
	return domainErr != nil && domainErr.Code == code
}
