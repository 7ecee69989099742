package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mkk-1817/crm-backend/internal/db"
)

const tokenIssuer = "crm-backend"

// TokenIssuer signs and decodes access tokens. The secret is injected at
// construction; nothing here reads process-wide state.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue encodes the user's identity into a signed HS256 token with an
// explicit validity window.
func (i *TokenIssuer) Issue(u *db.User) (string, error) {
	now := time.Now()
	claims := db.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Decode verifies the signature and the expiry claim and returns the embedded
// claims. Only HMAC signatures are accepted.
func (i *TokenIssuer) Decode(tokenStr string) (*db.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &db.Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*db.Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
