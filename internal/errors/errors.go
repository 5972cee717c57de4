package errors

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies engine failures so transports can map them without
// inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	// KindProfileRequired: the caller has no dating profile yet. Distinct from
	// NotFound so clients can route to profile creation.
	KindProfileRequired
	KindQuotaExhausted
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindProfileRequired:
		return "profile_required"
	case KindQuotaExhausted:
		return "quota_exhausted"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// FieldViolation names one invalid input field.
type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// Error is the structured failure returned across the engine boundary.
type Error struct {
	Kind    Kind
	Message string
	// Violations is set for KindValidation.
	Violations []FieldViolation
	// ResetAt is set for KindQuotaExhausted: when the quota refills.
	ResetAt time.Time
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrQuotaExhausted) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

// Sentinels for errors.Is checks.
var (
	ErrValidation      = &Error{Kind: KindValidation}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrProfileRequired = &Error{Kind: KindProfileRequired}
	ErrQuotaExhausted  = &Error{Kind: KindQuotaExhausted}
	ErrConflict        = &Error{Kind: KindConflict}
)

func Validation(msg string, violations ...FieldViolation) *Error {
	return &Error{Kind: KindValidation, Message: msg, Violations: violations}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func ProfileRequired(msg string) *Error {
	return &Error{Kind: KindProfileRequired, Message: msg}
}

func QuotaExhausted(msg string, resetAt time.Time) *Error {
	return &Error{Kind: KindQuotaExhausted, Message: msg, ResetAt: resetAt}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Internal wraps an unexpected store or infrastructure failure.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// As is errors.As narrowed to *Error.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
