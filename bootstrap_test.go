package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	auth "github.com/leha-maslennikov/backend-app"
)

func TestEnsureRootUser(t *testing.T) {
	ctx := context.Background()
	service, _ := newLoginService(t)

	root, err := auth.EnsureRootUser(ctx, service, "root", "root-secret")
	assert.NoError(t, err)
	assert.NotNil(t, root)
	assert.Equal(t, "root", root.Login)
	assert.Equal(t, auth.RootGroup, root.Group)

	ok, err := service.Verify(ctx, "root", "root-secret")
	assert.NoError(t, err)
	assert.True(t, ok)

	t.Run("second boot leaves the account alone", func(t *testing.T) {
		again, err := auth.EnsureRootUser(ctx, service, "root", "a-rotated-secret")
		assert.NoError(t, err)
		assert.Equal(t, root.ID, again.ID)

		// The stored password is never overwritten by bootstrap
		ok, err := service.Verify(ctx, "root", "root-secret")
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = service.Verify(ctx, "root", "a-rotated-secret")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing credentials fail startup", func(t *testing.T) {
		_, err := auth.EnsureRootUser(ctx, service, "", "pwd")
		assert.Error(t, err)

		_, err = auth.EnsureRootUser(ctx, service, "root", "")
		assert.Error(t, err)
	})
}

func TestEnsureRootUser_DeterministicID(t *testing.T) {
	ctx := context.Background()

	first := auth.NewLoginService(auth.NewMemoryUsers(), auth.NewBcryptHasher(bcrypt.MinCost), nil)
	second := auth.NewLoginService(auth.NewMemoryUsers(), auth.NewBcryptHasher(bcrypt.MinCost), nil)

	a, err := auth.EnsureRootUser(ctx, first, "root", "pw-one")
	assert.NoError(t, err)

	b, err := auth.EnsureRootUser(ctx, second, "root", "pw-two")
	assert.NoError(t, err)

	// Root identity is derived from the login, stable across environments
	assert.Equal(t, a.ID, b.ID)
}
