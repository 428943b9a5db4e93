// Package auth holds the token service and password hashing. Both are pure:
// the signing secret is injected at construction and nothing here touches the
// store.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidToken is returned by Verify for any malformed, tampered or
// expired token.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies the stateless HS256 session tokens. A
// token carries only the holder's user id; there is no server-side
// revocation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a token service. A zero or negative ttl issues
// tokens without an expiry claim.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the user id.
func (s *TokenService) Issue(userID primitive.ObjectID) (string, error) {
	claims := jwt.MapClaims{"_id": userID.Hex()}
	if s.ttl > 0 {
		claims["exp"] = time.Now().Add(s.ttl).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the embedded user id.
// Any failure maps to ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (primitive.ObjectID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return primitive.NilObjectID, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return primitive.NilObjectID, ErrInvalidToken
	}
	hex, ok := claims["_id"].(string)
	if !ok {
		return primitive.NilObjectID, ErrInvalidToken
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidToken
	}
	return id, nil
}
