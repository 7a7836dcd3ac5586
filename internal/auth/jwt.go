package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTIssuer signs and verifies the bearer tokens the API trusts. The
// services never see tokens; they get the resolved user.
type JWTIssuer struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{Secret: []byte(secret), TTL: ttl}
}

type signedClaims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

func (i *JWTIssuer) Sign(userID int) (string, error) {
	claims := &signedClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.Secret)
}

func (i *JWTIssuer) Verify(tokenString string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenString, &signedClaims{}, func(t *jwt.Token) (interface{}, error) {
		return i.Secret, nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*signedClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}
	return claims.UserID, nil
}
