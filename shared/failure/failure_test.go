package failure_test

import (
	"errors"
	"fmt"
	"testing"

	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Kind:    failure.KindNotFound,
		Message: "Room not found.",
	}

	assert.Equal(t, "Room not found.", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		kind    failure.Kind
		message string
	}{
		{
			name:    "ManagerOnlyError",
			failure: failure.ManagerOnlyError,
			kind:    failure.KindForbidden,
			message: "Only managers can access this option.",
		},
		{
			name:    "NotHotelManagerError",
			failure: failure.NotHotelManagerError,
			kind:    failure.KindForbidden,
			message: "You don't manage the specified hotel.",
		},
		{
			name:    "InvalidCredentialsError",
			failure: failure.InvalidCredentialsError,
			kind:    failure.KindUnauthorized,
			message: "Invalid user ID or password.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.failure.Kind)
			assert.Equal(t, tt.message, tt.failure.Message)
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    failure.Kind
		message string
	}{
		{name: "bad request from string", err: failure.BadRequestFromString("bad date"), kind: failure.KindInvalidInput, message: "bad date"},
		{name: "not found", err: failure.NotFound("missing"), kind: failure.KindNotFound, message: "missing"},
		{name: "fatal", err: failure.Fatal(errors.New("no driver")), kind: failure.KindFatal, message: "no driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, failure.GetKind(tt.err))
			assert.EqualError(t, tt.err, tt.message)
		})
	}
}

func TestNilWrappers(t *testing.T) {
	assert.NoError(t, failure.Fatal(nil))
}

func TestGetKind(t *testing.T) {
	wrapped := fmt.Errorf("update room: %w", failure.NotHotelManagerError)

	assert.Equal(t, failure.KindForbidden, failure.GetKind(wrapped))
	assert.Equal(t, failure.KindInternal, failure.GetKind(errors.New("plain")))
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "forbidden", err: failure.NotHotelManagerError, want: true},
		{name: "wrapped not found", err: fmt.Errorf("x: %w", failure.NotFound("Room not found.")), want: true},
		{name: "invalid input", err: failure.BadRequestFromString("bad"), want: true},
		{name: "internal", err: &failure.Failure{Kind: failure.KindInternal, Message: "boom"}, want: false},
		{name: "fatal", err: failure.Fatal(errors.New("boom")), want: false},
		{name: "unauthorized", err: failure.InvalidCredentialsError, want: true},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.IsUserFacing(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "forbidden", failure.KindForbidden.String())
	assert.Equal(t, "internal", failure.Kind(99).String())
}
