package failure

import (
	"errors"
)

// Kind classifies a failure by how the client reacts to it.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindFatal
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindFatal:
		return "fatal"
	default:
		return "internal"
	}
}

// Failure is an error carrying a message meant for the person at the terminal.
type Failure struct {
	Kind    Kind
	Message string
}

var ManagerOnlyError = &Failure{Kind: KindForbidden, Message: "Only managers can access this option."}
var NotHotelManagerError = &Failure{Kind: KindForbidden, Message: "You don't manage the specified hotel."}
var InvalidCredentialsError = &Failure{Kind: KindUnauthorized, Message: "Invalid user ID or password."}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequestFromString returns a new Failure for invalid input with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Kind:    KindInvalidInput,
		Message: msg,
	}
}

// NotFound returns a new Failure for a missing entity.
func NotFound(msg string) error {
	return &Failure{
		Kind:    KindNotFound,
		Message: msg,
	}
}

// Fatal returns a new Failure that ends the process.
func Fatal(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindFatal,
			Message: err.Error(),
		}
	}

	return nil
}

// GetKind returns the kind of an error; plain errors are internal.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsUserFacing reports whether err is an expected outcome to show on stdout
// rather than an operation error.
func IsUserFacing(err error) bool {
	var fail *Failure
	if !errors.As(err, &fail) {
		return false
	}

	switch fail.Kind {
	case KindInvalidInput, KindUnauthorized, KindForbidden, KindNotFound:
		return true
	default:
		return false
	}
}
