package util

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindAuthentication
	KindAuthorization
	KindValidation
	KindSubscriptionRequired
	KindUpstreamGeneration
	KindNotFound
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindValidation:
		return "validation"
	case KindSubscriptionRequired:
		return "subscription_required"
	case KindUpstreamGeneration:
		return "upstream_generation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

const (
	CodeAuthenticationRequired = "AUTHENTICATION_REQUIRED"
	CodeSubscriptionRequired   = "SUBSCRIPTION_REQUIRED"
	CodeValidation             = "VALIDATION_ERROR"
	CodeNotFound               = "NOT_FOUND"
	CodeConflict               = "CONFLICT"
	CodeGenerationFailed       = "GENERATION_FAILED"
	CodeInternal               = "INTERNAL_ERROR"
)

// AppError carries its kind from the point where it was created.
type AppError struct {
	Kind     ErrorKind
	Code     string
	Message  string
	Details  interface{}
	Redirect string
	Err      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		if e.Err != nil {
			return e.Message + ": " + e.Err.Error()
		}
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *AppError) Unwrap() error { return e.Err }

// WithDetails 返回附带 details 的副本，不修改共享的错误值
func (e *AppError) WithDetails(details interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

func NewAuthenticationError(message string) *AppError {
	return &AppError{Kind: KindAuthentication, Code: CodeAuthenticationRequired, Message: message, Redirect: "/login"}
}

// NewAuthorizationError is reported as not found so that ownership does not leak existence.
func NewAuthorizationError(resource string) *AppError {
	return &AppError{Kind: KindAuthorization, Code: CodeNotFound, Message: resource + " not found"}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Code: CodeNotFound, Message: resource + " not found"}
}

func NewValidationError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Code: CodeConflict, Message: message}
}

func NewSubscriptionRequiredError() *AppError {
	return &AppError{
		Kind:     KindSubscriptionRequired,
		Code:     CodeSubscriptionRequired,
		Message:  "an active subscription or trial is required",
		Redirect: "/pricing",
	}
}

func NewUpstreamGenerationError(err error) *AppError {
	return &AppError{Kind: KindUpstreamGeneration, Code: CodeGenerationFailed, Message: "content generation failed", Err: err}
}

func WrapInternal(message string, err error) *AppError {
	return &AppError{Kind: KindUnknown, Code: CodeInternal, Message: message, Err: err}
}

var (
	ErrEmailRegistered    = NewConflictError("email already registered")
	ErrInvalidCredentials = NewAuthenticationError("invalid credentials")
	ErrTokenRevoked       = NewAuthenticationError("session has ended")
	ErrEmptyTest          = NewValidationError("test has no questions")
	ErrEmptySubmission    = NewValidationError("submission has no answers")
	ErrTrialAlreadyUsed   = NewValidationError("trial already used")
)
