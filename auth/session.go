// Package auth is the session binder: it associates a transport
// connection with the (name, room) identity established during the HTTP
// handshake. The identity travels as a signed JWT cookie, so the server
// keeps no session store and a tampered cookie simply resolves to no
// identity.
package auth

import (
	"fmt"
	"time"

	"chat-rooms/domain"
	"chat-rooms/errors"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the structure of the data stored inside the JWT.
type SessionClaims struct {
	Name string `json:"name"`
	Room string `json:"room"`
	jwt.RegisteredClaims
}

// Sessions issues and resolves session tokens. The secret comes from
// configuration; rotating it invalidates every outstanding session.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token binding identity for the configured TTL.
func (s *Sessions) Issue(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		Name: identity.Name,
		Room: string(identity.Room),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "chat-rooms",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Resolve parses and validates a token string back into an identity.
// Any failure (bad signature, expiry, malformed token) comes back as
// ErrInvalidIdentity: the caller treats the client as never having
// completed the handshake.
func (s *Sessions) Resolve(tokenString string) (domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", errors.ErrInvalidIdentity, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, errors.ErrInvalidIdentity
	}
	return domain.Identity{Name: claims.Name, Room: domain.RoomCode(claims.Room)}, nil
}
