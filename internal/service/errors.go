package service

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a machine-readable error category. The HTTP layer maps kinds
// to status codes; services never pick status codes themselves.
type Kind string

const (
	// KindValidation covers malformed or missing input: absent required
	// fields, bad email/phone patterns, non-positive amounts.
	KindValidation Kind = "validation"

	// KindNotFound covers a referenced guardian, child, owner or fee
	// structure that does not exist.
	KindNotFound Kind = "not_found"

	// KindConflict covers duplicate unique fields: a second owner, a
	// reused guardian email.
	KindConflict Kind = "conflict"

	// KindInvalidChildIDs covers a payment request where one or more
	// child IDs do not resolve. The error carries the unresolved IDs.
	KindInvalidChildIDs Kind = "invalid_child_ids"
)

// Error is a service-level failure with a category and, for child-ID
// failures, the list of IDs that did not resolve. All service errors are
// detected before any state mutation.
type Error struct {
	Kind            Kind
	Message         string
	InvalidChildIDs []string
}

func (e *Error) Error() string {
	return e.Message
}

// Validationf builds a validation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a conflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidChildIDsError builds the referential error for a payment
// request, listing every child ID that did not resolve.
func InvalidChildIDsError(ids []string) *Error {
	return &Error{
		Kind:            KindInvalidChildIDs,
		Message:         fmt.Sprintf("invalid child ids: %s", strings.Join(ids, ", ")),
		InvalidChildIDs: ids,
	}
}

// KindOf extracts the Kind from err, or "" when err is not a service
// error.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return ""
}
