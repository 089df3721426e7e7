package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	auth "github.com/leha-maslennikov/backend-app"
)

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
		expected  bool
	}{
		{
			name:      "UserExists matches",
			err:       auth.ErrUserExists,
			predicate: auth.IsUserExists,
			expected:  true,
		},
		{
			name:      "UserNotExists matches",
			err:       auth.ErrUserNotExists,
			predicate: auth.IsUserNotExists,
			expected:  true,
		},
		{
			name:      "Different condition does not match",
			err:       auth.ErrUserNotExists,
			predicate: auth.IsUserExists,
			expected:  false,
		},
		{
			name:      "Plain error does not match",
			err:       errors.New("user already exists"),
			predicate: auth.IsUserExists,
			expected:  false,
		},
		{
			name:      "Nil error does not match",
			err:       nil,
			predicate: auth.IsUserExists,
			expected:  false,
		},
		{
			name:      "VersionNotFound matches",
			err:       auth.ErrVersionNotFound,
			predicate: auth.IsVersionNotFound,
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.predicate(tt.err))
		})
	}
}

func TestIsInvalidToken(t *testing.T) {
	assert.True(t, auth.IsInvalidToken(auth.ErrTokenInvalidSignature))
	assert.True(t, auth.IsInvalidToken(auth.ErrTokenMalformed))
	assert.False(t, auth.IsInvalidToken(auth.ErrVersionNotFound))
	assert.False(t, auth.IsInvalidToken(nil))
}
