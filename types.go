package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// PasswordHasher produces and checks one-way password hashes. Hash output is
// self contained (algorithm, cost, and salt travel inside the hash string) so
// Verify needs no extra parameters.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, hash string) bool
	NeedsRehash(hash string) bool
}

// LoginService manages user identities and checks credentials
type LoginService interface {
	CreateUser(ctx context.Context, login, password string) (*User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, update UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, filter Filter) (*User, error)
	GetAll(ctx context.Context, limit, offset int) ([]*User, error)
	Verify(ctx context.Context, login, password string) (bool, error)
}

// UserUpdate is a partial update; zero-value fields are left untouched
type UserUpdate struct {
	Login    string
	Password string
	Group    string
}

// TokenService issues bearer tokens and verifies presented ones against the
// stored per-user version.
type TokenService interface {
	CreateToken(ctx context.Context, userID uuid.UUID, expires time.Time, action string) (string, error)
	VerifyToken(ctx context.Context, raw string) (*Token, error)
	Revoke(ctx context.Context, userID uuid.UUID) error
}

// TokenCodec turns claims into compact signed strings and back. Decode checks
// the signature and structure only; expiry and version checks are the
// TokenService's job.
type TokenCodec interface {
	Encode(claims *TokenClaims) (string, error)
	Decode(raw string) (*TokenClaims, error)
}

// Config holds auth options consumed by the HTTP layer and the server binary
type Config interface {
	GetSigningKey() string
	GetTokenExpiration() int
	GetCookieName() string
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
