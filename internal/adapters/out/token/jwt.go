// Package token signs the bearer tokens handed out at login. A token only
// names a session; everything else is looked up on each request.
package token

import (
	"errors"
	"time"

	"snackshop/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const issuer = "snackshop"

// minSecretLength keeps HS256 keys at 256 bits.
const minSecretLength = 32

// JWTIssuer implements ports.TokenIssuer with HS256.
type JWTIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewJWTIssuer(secret string) (*JWTIssuer, error) {
	if len(secret) < minSecretLength {
		return nil, errs.NewValueIsOutOfRangeError("jwt secret length", len(secret), minSecretLength, "unbounded")
	}
	return &JWTIssuer{secret: []byte(secret), now: time.Now}, nil
}

func (j *JWTIssuer) Issue(sessionID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   sessionID.String(),
		IssuedAt:  jwt.NewNumericDate(j.now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

// Parse returns the session id of a valid token. Every failure is an
// UnauthenticatedError.
func (j *JWTIssuer) Parse(raw string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	tok, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, errs.NewUnauthenticatedErrorWithCause("token expired", err)
		}
		return uuid.Nil, errs.NewUnauthenticatedErrorWithCause("invalid token", err)
	}
	if !tok.Valid || claims.Issuer != issuer {
		return uuid.Nil, errs.NewUnauthenticatedError("invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errs.NewUnauthenticatedErrorWithCause("invalid token subject", err)
	}
	return id, nil
}
