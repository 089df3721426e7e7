package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
)

// JWTCodec signs claim sets as compact HS256 JWTs and decodes presented
// strings back into claims. Decode verifies structure and signature only.
type JWTCodec struct {
	signingKey []byte
	logger     Logger
}

var _ TokenCodec = (*JWTCodec)(nil)

func NewJWTCodec(signingKey []byte, logger Logger) *JWTCodec {
	if logger == nil {
		logger = defLogger{}
	}
	return &JWTCodec{
		signingKey: signingKey,
		logger:     logger,
	}
}

// Encode serializes and signs the claim set
func (c *JWTCodec) Encode(claims *TokenClaims) (string, error) {
	if claims == nil {
		return "", goerrors.New("claims must not be nil", goerrors.CategoryInternal)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(c.signingKey)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to sign token")
	}

	return signed, nil
}

// Decode parses and signature-checks a token string. It fails with
// ErrTokenInvalidSignature when the signature does not verify (including
// tokens declaring a non-HMAC algorithm) and ErrTokenMalformed when the
// string cannot be parsed.
func (c *JWTCodec) Decode(raw string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			c.logger.Error("token codec rejected unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.signingKey, nil
	})

	if err != nil {
		if goerrors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrTokenInvalidSignature
		}
		if goerrors.Is(err, jwt.ErrTokenMalformed) {
			return nil, ErrTokenMalformed
		}
		return nil, goerrors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
			WithTextCode(ErrTokenMalformed.TextCode)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		c.logger.Error("token codec could not map claims")
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
