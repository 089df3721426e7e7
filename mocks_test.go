package auth_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	auth "github.com/leha-maslennikov/backend-app"
)

// MockLogger implements auth.Logger for testing
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...any) {
	m.Called(format, args)
}

// MockUsers implements auth.Users
type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) Add(ctx context.Context, user *auth.User) (*auth.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *MockUsers) Get(ctx context.Context, filter auth.Filter) (*auth.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *MockUsers) Select(ctx context.Context, limit, offset int, filter auth.Filter) ([]*auth.User, error) {
	args := m.Called(ctx, limit, offset, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*auth.User), args.Error(1)
}

func (m *MockUsers) Delete(ctx context.Context, filter auth.Filter) error {
	args := m.Called(ctx, filter)
	return args.Error(0)
}

// MockTokenVersions implements auth.TokenVersions
type MockTokenVersions struct {
	mock.Mock
}

func (m *MockTokenVersions) Create(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenVersions) Read(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenVersions) Revoke(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockHasher implements auth.PasswordHasher
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(secret string) (string, error) {
	args := m.Called(secret)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Verify(secret, hash string) bool {
	args := m.Called(secret, hash)
	return args.Bool(0)
}

func (m *MockHasher) NeedsRehash(hash string) bool {
	args := m.Called(hash)
	return args.Bool(0)
}
