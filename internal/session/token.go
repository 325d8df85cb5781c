package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether a bearer token is a JWT whose exp claim
// has passed. Tokens that are not JWTs, or JWTs without an exp claim,
// are never considered expired here; the upstream remains the
// authority on token validity.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}
