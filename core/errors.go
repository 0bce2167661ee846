package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// ForbiddenReason is a stable machine-readable cause attached to a denied write.
type ForbiddenReason string

const (
	ReasonPendingApproval  ForbiddenReason = "pending_approval"
	ReasonWrongDepartment  ForbiddenReason = "wrong_department"
	ReasonInsufficientRole ForbiddenReason = "insufficient_role"
	ReasonNotAdmin         ForbiddenReason = "not_admin"
)

// ForbiddenError denies an action on an otherwise reachable resource.
type ForbiddenError struct {
	Reason  ForbiddenReason
	Message string
}

func NewForbiddenError(reason ForbiddenReason, msg string) error {
	return &ForbiddenError{Reason: reason, Message: msg}
}

func (err ForbiddenError) Error() string {
	return err.Message
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
