package auth

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// LoginManager implements LoginService on top of a Users store and a
// PasswordHasher
type LoginManager struct {
	users  Users
	hasher PasswordHasher
	logger Logger
}

var _ LoginService = (*LoginManager)(nil)

// NewLoginService creates a LoginService. A nil hasher falls back to bcrypt
// at the default cost; a nil logger falls back to the package logger.
func NewLoginService(users Users, hasher PasswordHasher, logger Logger) *LoginManager {
	if hasher == nil {
		hasher = NewBcryptHasher(DefaultHashCost)
	}
	if logger == nil {
		logger = defLogger{}
	}
	return &LoginManager{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// CreateUser hashes the password and persists a new identity. Fails with
// ErrUserExists when the login is already taken.
func (s *LoginManager) CreateUser(ctx context.Context, login, password string) (*User, error) {
	if login == "" || password == "" {
		return nil, ErrNoEmptyString
	}

	existing, err := s.users.Get(ctx, ByLogin(login))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}

	user, err := s.users.Add(ctx, &User{
		Login:        login,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("created user", "login", login, "id", user.ID.String())
	return user, nil
}

// UpdateUser applies a partial update. Zero-value fields are left untouched;
// a new password is re-hashed before storage.
func (s *LoginManager) UpdateUser(ctx context.Context, id uuid.UUID, update UserUpdate) (*User, error) {
	user, err := s.users.Get(ctx, ByID(id))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotExists
	}

	if update.Login != "" && update.Login != user.Login {
		taken, err := s.users.Get(ctx, ByLogin(update.Login))
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, ErrUserExists
		}
		user.Login = update.Login
	}

	if update.Password != "" {
		hash, err := s.hasher.Hash(update.Password)
		if err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
		}
		user.PasswordHash = hash
	}

	if update.Group != "" {
		user.Group = update.Group
	}

	return s.users.Add(ctx, user)
}

// DeleteUser removes the identity. Deleting an absent user is a no-op.
func (s *LoginManager) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, ByID(id))
}

// Get returns at most one user matching the filter, nil when absent
func (s *LoginManager) Get(ctx context.Context, filter Filter) (*User, error) {
	return s.users.Get(ctx, filter)
}

// GetAll returns a page of users
func (s *LoginManager) GetAll(ctx context.Context, limit, offset int) ([]*User, error) {
	return s.users.Select(ctx, limit, offset, nil)
}

// Verify checks a login/password pair. Unknown logins and wrong passwords
// both report a bare false so callers cannot tell which one failed; only
// storage trouble surfaces as an error.
func (s *LoginManager) Verify(ctx context.Context, login, password string) (bool, error) {
	user, err := s.users.Get(ctx, ByLogin(login))
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	return s.hasher.Verify(password, user.PasswordHash), nil
}
