package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the signed claim set carried inside a token: the subject
// user, an absolute Unix expiry, a free-form action tag, and the snapshot of
// the user's revocation version taken at issuance.
//
// Expiry rides in the custom "expires" claim rather than the registered
// "exp" claim so the codec never enforces it during decode; expiry is a
// business check owned by the TokenService.
type TokenClaims struct {
	UserID  uuid.UUID `json:"user_id"`
	Expires int64     `json:"expires"`
	Action  string    `json:"action"`
	Version int64     `json:"version"`
}

var _ jwt.Claims = (*TokenClaims)(nil)

func (c *TokenClaims) GetExpirationTime() (*jwt.NumericDate, error) { return nil, nil }
func (c *TokenClaims) GetIssuedAt() (*jwt.NumericDate, error)       { return nil, nil }
func (c *TokenClaims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c *TokenClaims) GetIssuer() (string, error)                   { return "", nil }
func (c *TokenClaims) GetSubject() (string, error)                  { return c.UserID.String(), nil }
func (c *TokenClaims) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }

// ExpiresAt returns the expiry as wall-clock time
func (c *TokenClaims) ExpiresAt() time.Time {
	return time.Unix(c.Expires, 0)
}

// Token is a verified token as handed back to callers. Version stays an
// internal detail of the claim set; callers only see the identity, the
// expiry, the action, and the raw string they presented.
type Token struct {
	UserID  uuid.UUID `json:"user_id"`
	Expires int64     `json:"expires"`
	Action  string    `json:"action"`
	Raw     string    `json:"token"`
}
