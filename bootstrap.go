package auth

import (
	"context"
)

// RootGroup is the group label assigned to the bootstrap account
const RootGroup = "root"

// EnsureRootUser guarantees the bootstrap account exists. It is an
// idempotent startup step: an existing login is left exactly as found, the
// stored password is never overwritten. Concurrent boots racing on the
// create collapse into success.
func EnsureRootUser(ctx context.Context, svc LoginService, login, password string) (*User, error) {
	if login == "" || password == "" {
		return nil, ErrNoEmptyString
	}

	existing, err := svc.Get(ctx, ByLogin(login))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	user, err := svc.CreateUser(ctx, login, password)
	if err != nil {
		if IsUserExists(err) {
			return svc.Get(ctx, ByLogin(login))
		}
		return nil, err
	}

	return svc.UpdateUser(ctx, user.ID, UserUpdate{Group: RootGroup})
}
