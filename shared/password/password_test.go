package password_test

import (
	"strings"
	"testing"

	"hotel/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, password.DefaultCost)
}

func TestHash(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectedError error
	}{
		{name: "valid password", password: "validPassword123"},
		{name: "short password", password: "abc"},
		{name: "password with special characters", password: "P@ssw0rd!#$%^&*()"},
		{name: "unicode password", password: "пароль123"},
		{name: "empty password", password: "", expectedError: password.ErrEmptyPassword},
		{name: "long password", password: strings.Repeat("a", 100), expectedError: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, password.IsHash(hash))
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestVerify(t *testing.T) {
	testPassword := "testPassword123"
	validHash, err := password.Hash(testPassword)
	require.NoError(t, err)

	tests := []struct {
		name          string
		password      string
		hash          string
		expectedError error
	}{
		{name: "valid password and hash", password: testPassword, hash: validHash},
		{name: "wrong password", password: "wrongPassword", hash: validHash, expectedError: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: validHash, expectedError: password.ErrInvalidPassword},
		{name: "empty hash", password: testPassword, hash: "", expectedError: password.ErrInvalidPassword},
		{name: "invalid hash format", password: testPassword, hash: "invalid_hash", expectedError: password.ErrVerifyingPassword},
		{name: "truncated hash", password: testPassword, hash: validHash[:10], expectedError: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsHash(t *testing.T) {
	hash, err := password.Hash("secret")
	require.NoError(t, err)

	assert.True(t, password.IsHash(hash))
	assert.False(t, password.IsHash("secret"))
	assert.False(t, password.IsHash(""))
}

func TestHashUniqueSalt(t *testing.T) {
	first, err := password.Hash("same")
	require.NoError(t, err)

	second, err := password.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, password.Verify("same", first))
	assert.NoError(t, password.Verify("same", second))
}
