// Package token issues and parses the bearer tokens that identify a user,
// and keeps the current token in client-local storage.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Prefix starts every token issued by PrefixCodec.
const Prefix = "hc-token-"

var ErrMalformedToken = errors.New("malformed token")

type Codec interface {
	Issue(userID string) (string, error)
	Parse(token string) (string, error)
}

// PrefixCodec derives the token from the user id. It is a simulation of a
// session token, not a security boundary: no expiry, no signature.
type PrefixCodec struct{}

func (PrefixCodec) Issue(userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("issue token: empty user id")
	}
	return Prefix + userID, nil
}

func (PrefixCodec) Parse(token string) (string, error) {
	userID, ok := strings.CutPrefix(token, Prefix)
	if !ok || userID == "" {
		return "", ErrMalformedToken
	}
	return userID, nil
}

type Claims struct {
	jwt.RegisteredClaims
}

// JWTCodec issues HS256 tokens whose subject is the user id.
type JWTCodec struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewJWTCodec(secret string, expiry time.Duration) *JWTCodec {
	return &JWTCodec{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

func (c *JWTCodec) Issue(userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("issue token: empty user id")
	}
	now := c.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "hyperconnect",
			Subject:   userID,
		},
	}
	if c.expiry > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.expiry))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (c *JWTCodec) Parse(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrMalformedToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrMalformedToken
	}
	return claims.Subject, nil
}
