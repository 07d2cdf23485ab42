package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// The front-end never holds the signing secret; the backend stays the only
// authority on validity. ok is false for opaque tokens or tokens without exp.
func TokenExpiry(tokenString string) (exp time.Time, ok bool) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}

	switch v := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(v), 0), true
	case int64:
		return time.Unix(v, 0), true
	}
	return time.Time{}, false
}

// TokenExpired reports whether the token carries an exp claim in the past.
func TokenExpired(tokenString string, now time.Time) bool {
	exp, ok := TokenExpiry(tokenString)
	return ok && !now.Before(exp)
}
