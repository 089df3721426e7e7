package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the identity record. Login is the unique authentication handle;
// PasswordHash only ever stores hasher output, never the raw secret.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Login         string     `bun:"login,notnull,unique" json:"login,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"password_hash,omitempty"`
	Group         string     `bun:"user_group" json:"user_group,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// TokenVersion is the per-user revocation counter. One row per user that has
// ever had a token issued; the version starts at 1 and only ever grows while
// the user exists. Rows are created lazily on first issuance and survive user
// deletion (orphans are harmless: a deleted user cannot obtain new tokens).
type TokenVersion struct {
	bun.BaseModel `bun:"table:token_versions,alias:tkv"`
	UserID        uuid.UUID `bun:"user_id,pk,type:uuid" json:"user_id,omitempty"`
	Version       int64     `bun:"version,notnull" json:"version,omitempty"`
}
