// Package auth implements the credential primitives of the server: stateless
// JWT issuance/validation, password hashing, and heuristic input filtering.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lgmarques/taskhub/internal/common"
)

// Issuer is embedded in every token and required back on validation.
const Issuer = "TaskHub"

// expiryZone is the fixed offset clock used to compute token expiry. The
// resulting instant does not depend on the deployment timezone.
var expiryZone = time.FixedZone("-03:00", -3*60*60)

// TokenService issues and validates signed, self-contained bearer tokens.
// The HMAC secret is fixed at construction and shared process-wide.
type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// NewTokenService builds a TokenService around the given secret and token
// lifetime.
func NewTokenService(secret string, validity time.Duration) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		validity: validity,
		now:      time.Now,
	}
}

// Issue signs an HS256 token carrying the user's e-mail as subject. Expiry is
// issuance time plus the configured lifetime on the fixed offset clock.
func (s *TokenService) Issue(email string) (string, error) {
	expires := s.now().In(expiryZone).Add(s.validity)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	return token.SignedString(s.secret)
}

// Validate verifies the signature, issuer and expiry of tokenString and
// returns the subject e-mail. Every failure collapses into
// common.ErrInvalidToken so callers cannot tell which check rejected it.
func (s *TokenService) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil || !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
