package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	auth "github.com/leha-maslennikov/backend-app"
)

func TestMemoryUsers_AddSemantics(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryUsers()

	t.Run("insert assigns id", func(t *testing.T) {
		user, err := store.Add(ctx, &auth.User{Login: "alice", PasswordHash: "h1"})
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
	})

	t.Run("insert with taken login fails", func(t *testing.T) {
		_, err := store.Add(ctx, &auth.User{Login: "alice", PasswordHash: "h2"})
		assert.Error(t, err)
		assert.True(t, auth.IsUserExists(err))
	})

	t.Run("update in place", func(t *testing.T) {
		user, err := store.Get(ctx, auth.ByLogin("alice"))
		assert.NoError(t, err)

		user.PasswordHash = "h3"
		updated, err := store.Add(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, updated.ID)
		assert.Equal(t, "h3", updated.PasswordHash)
	})

	t.Run("update of unknown id fails", func(t *testing.T) {
		_, err := store.Add(ctx, &auth.User{ID: uuid.New(), Login: "ghost"})
		assert.Error(t, err)
		assert.True(t, auth.IsUserNotExists(err))
	})

	t.Run("nil record rejected", func(t *testing.T) {
		_, err := store.Add(ctx, nil)
		assert.Error(t, err)
	})
}

func TestMemoryUsers_GetAndSelect(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryUsers()

	logins := []string{"alice", "bob", "carol"}
	ids := map[string]uuid.UUID{}
	for _, login := range logins {
		user, err := store.Add(ctx, &auth.User{Login: login, PasswordHash: "h", Group: "staff"})
		assert.NoError(t, err)
		ids[login] = user.ID
	}

	t.Run("get by id", func(t *testing.T) {
		user, err := store.Get(ctx, auth.ByID(ids["bob"]))
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "bob", user.Login)
	})

	t.Run("absent returns nil without error", func(t *testing.T) {
		user, err := store.Get(ctx, auth.ByLogin("nobody"))
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("combined filter", func(t *testing.T) {
		user, err := store.Get(ctx, auth.ByLogin("alice").And(auth.ByGroup("staff")))
		assert.NoError(t, err)
		assert.NotNil(t, user)

		user, err = store.Get(ctx, auth.ByLogin("alice").And(auth.ByGroup("other")))
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("select is ordered and paginated", func(t *testing.T) {
		all, err := store.Select(ctx, 0, 0, nil)
		assert.NoError(t, err)
		assert.Len(t, all, 3)
		assert.Equal(t, "alice", all[0].Login)
		assert.Equal(t, "carol", all[2].Login)

		page, err := store.Select(ctx, 1, 1, nil)
		assert.NoError(t, err)
		assert.Len(t, page, 1)
		assert.Equal(t, "bob", page[0].Login)

		empty, err := store.Select(ctx, 10, 99, nil)
		assert.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		user, err := store.Get(ctx, auth.ByLogin("alice"))
		assert.NoError(t, err)

		user.PasswordHash = "mutated"

		again, err := store.Get(ctx, auth.ByLogin("alice"))
		assert.NoError(t, err)
		assert.Equal(t, "h", again.PasswordHash)
	})
}

func TestMemoryUsers_Delete(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryUsers()

	user, err := store.Add(ctx, &auth.User{Login: "alice", PasswordHash: "h"})
	assert.NoError(t, err)

	t.Run("empty filter refused", func(t *testing.T) {
		assert.Error(t, store.Delete(ctx, nil))
	})

	t.Run("delete matching", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, auth.ByID(user.ID)))

		found, err := store.Get(ctx, auth.ByID(user.ID))
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("no match is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, auth.ByID(user.ID)))
	})
}

func TestMemoryTokenVersions(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryTokenVersions()
	userID := uuid.New()

	t.Run("read before create", func(t *testing.T) {
		_, err := store.Read(ctx, userID)
		assert.Error(t, err)
		assert.True(t, auth.IsVersionNotFound(err))
	})

	t.Run("create initializes once", func(t *testing.T) {
		version, err := store.Create(ctx, userID)
		assert.NoError(t, err)
		assert.EqualValues(t, 1, version)

		// ensure semantics: repeated creates never bump
		version, err = store.Create(ctx, userID)
		assert.NoError(t, err)
		assert.EqualValues(t, 1, version)
	})

	t.Run("revoke increments", func(t *testing.T) {
		assert.NoError(t, store.Revoke(ctx, userID))
		assert.NoError(t, store.Revoke(ctx, userID))

		version, err := store.Read(ctx, userID)
		assert.NoError(t, err)
		assert.EqualValues(t, 3, version)
	})

	t.Run("revoke without record is silent", func(t *testing.T) {
		other := uuid.New()
		assert.NoError(t, store.Revoke(ctx, other))

		_, err := store.Read(ctx, other)
		assert.True(t, auth.IsVersionNotFound(err))
	})
}
