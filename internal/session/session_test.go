package session_test

import (
	"testing"
	"time"

	"hotel/internal/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    session.Role
		wantErr bool
	}{
		{name: "customer", value: "customer", want: session.RoleCustomer},
		{name: "padded manager", value: "manager   ", want: session.RoleManager},
		{name: "capitalised", value: "Customer", want: session.RoleCustomer},
		{name: "unknown", value: "admin", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := session.ParseRole(tt.value)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestNew(t *testing.T) {
	startedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	sess := session.New("12", session.RoleManager, startedAt)

	assert.Equal(t, "12", sess.UserID)
	assert.Equal(t, session.RoleManager, sess.Role)
	assert.Equal(t, startedAt, sess.StartedAt)

	_, err := uuid.Parse(sess.ID)
	assert.NoError(t, err)

	other := session.New("12", session.RoleManager, startedAt)
	assert.NotEqual(t, sess.ID, other.ID)
}

func TestIsManager(t *testing.T) {
	var none *session.Session

	assert.False(t, none.IsManager())
	assert.False(t, session.New("1", session.RoleCustomer, time.Now()).IsManager())
	assert.True(t, session.New("2", session.RoleManager, time.Now()).IsManager())
}
