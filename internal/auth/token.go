package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// Principal is the authenticated caller extracted from a session token.
// Role is resolved separately from the profile store.
type Principal struct {
	UserID   string
	Email    string
	FullName string
}

// TokenVerifier validates access tokens issued by the identity provider.
// The provider signs sessions with HS256 and a shared secret; anything
// that fails to parse or verify is treated as no session.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token, returning the caller identity.
func (v *TokenVerifier) Verify(tokenString string) (Principal, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Principal{}, ErrInvalidToken
	}

	p := Principal{UserID: sub}
	if email, ok := claims["email"].(string); ok {
		p.Email = email
	}
	// The provider nests profile data under user_metadata.
	if meta, ok := claims["user_metadata"].(map[string]interface{}); ok {
		if name, ok := meta["full_name"].(string); ok {
			p.FullName = name
		}
	}
	return p, nil
}
