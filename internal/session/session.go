// Package session holds the identity bound to one interactive run.
package session

import (
	"fmt"
	"strings"
	"time"

	"hotel/shared/constant"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer Role = constant.RoleCustomer
	RoleManager  Role = constant.RoleManager
)

// ParseRole reads a userType column value; the column is padded char(n).
func ParseRole(value string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))

	switch role {
	case RoleCustomer, RoleManager:
		return role, nil
	default:
		return constant.Empty, fmt.Errorf("unknown user type %q", value)
	}
}

func (r Role) String() string {
	return string(r)
}

// Session is created at login and dropped at logout. ID correlates log lines
// and spans of one login.
type Session struct {
	ID        string
	UserID    string
	Role      Role
	StartedAt time.Time
}

func New(userID string, role Role, startedAt time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      role,
		StartedAt: startedAt,
	}
}

func (s *Session) IsManager() bool {
	return s != nil && s.Role == RoleManager
}
