package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL applies when no validity is configured.
const DefaultTokenTTL = 24 * time.Hour

// Claims are the registered claims plus the account id under "id", the key
// existing clients read.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"id"`
}

// TokenCodec issues and verifies HS256 session tokens. It holds no mutable
// state and is safe for concurrent use.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: secret, ttl: ttl, now: time.Now}
}

// Issue mints a token for accountID that expires after the codec's TTL.
func (c *TokenCodec) Issue(accountID string) (string, error) {
	if accountID == "" {
		return "", errors.New("auth: cannot issue token for empty account id")
	}

	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		AccountID: accountID,
	})

	return token.SignedString(c.secret)
}

// Verify checks signature, algorithm and expiry and returns the account id.
// Every failure is a *VerificationError.
func (c *TokenCodec) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", &VerificationError{Kind: classify(err), Err: err}
	}

	if claims.AccountID == "" {
		return "", &VerificationError{Kind: KindMalformed, Err: errors.New("token carries no account id")}
	}

	return claims.AccountID, nil
}

func classify(err error) VerificationKind {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return KindExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return KindSignatureInvalid
	default:
		return KindMalformed
	}
}
