package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type Claims struct {
	UID string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token carrying uid both as "uid" and "sub".
func GenerateToken(uid string, secret []byte, ttl time.Duration, now time.Time) (string, error) {
	claims := Claims{
		UID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

// ParseToken verifies an HS256 token and returns its uid, falling back to sub.
func ParseToken(tokenStr string, secret []byte) (string, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}

	uid := claims.UID
	if uid == "" {
		uid = claims.Subject
	}
	if uid == "" {
		return "", errors.New("missing uid/sub")
	}
	return uid, nil
}
