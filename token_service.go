package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenServiceImpl implements the TokenService interface by pairing a
// TokenCodec with the TokenVersions counter.
type TokenServiceImpl struct {
	versions TokenVersions
	codec    TokenCodec
	logger   Logger
	now      func() time.Time
}

var _ TokenService = (*TokenServiceImpl)(nil)

// NewTokenService creates a new TokenService instance
func NewTokenService(versions TokenVersions, codec TokenCodec, logger Logger) *TokenServiceImpl {
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenServiceImpl{
		versions: versions,
		codec:    codec,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the time source, used by tests to pin expiry checks
func (ts *TokenServiceImpl) WithClock(now func() time.Time) *TokenServiceImpl {
	if now != nil {
		ts.now = now
	}
	return ts
}

// CreateToken issues a signed token embedding the user's current version.
// The first issuance for a user lazily initializes the counter; issuing more
// tokens never bumps it, so outstanding tokens stay valid.
func (ts *TokenServiceImpl) CreateToken(ctx context.Context, userID uuid.UUID, expires time.Time, action string) (string, error) {
	version, err := ts.versions.Create(ctx, userID)
	if err != nil {
		return "", err
	}

	return ts.codec.Encode(&TokenClaims{
		UserID:  userID,
		Expires: expires.Unix(),
		Action:  action,
		Version: version,
	})
}

// VerifyToken checks a presented token string. A nil Token with a nil error
// means the token is invalid: forged, malformed, expired, or revoked.
// Callers are deliberately not told which; only storage failures surface as
// errors. The check is side-effect free, one version read per call.
func (ts *TokenServiceImpl) VerifyToken(ctx context.Context, raw string) (*Token, error) {
	claims, err := ts.codec.Decode(raw)
	if err != nil {
		if IsInvalidToken(err) {
			ts.logger.Debug("rejected undecodable token", "error", err)
			return nil, nil
		}
		return nil, err
	}

	if claims.Expires <= ts.now().Unix() {
		return nil, nil
	}

	version, err := ts.versions.Read(ctx, claims.UserID)
	if err != nil {
		if IsVersionNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	if version != claims.Version {
		return nil, nil
	}

	return &Token{
		UserID:  claims.UserID,
		Expires: claims.Expires,
		Action:  claims.Action,
		Raw:     raw,
	}, nil
}

// Revoke invalidates every outstanding token for the user as of now by
// bumping the stored version. There is no per-token revocation; tokens
// issued after this call embed the new version and verify normally.
func (ts *TokenServiceImpl) Revoke(ctx context.Context, userID uuid.UUID) error {
	if err := ts.versions.Revoke(ctx, userID); err != nil {
		return err
	}

	ts.logger.Info("revoked tokens", "user_id", userID.String())
	return nil
}
