package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by a session token. Subject and UserID
// both hold the user id; StoreID holds the raw store id as written by
// whichever path issued the token, so its shape is not fixed.
type SessionClaims struct {
	UserID  string `json:"userId,omitempty"`
	StoreID any    `json:"_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// StateClaims are the claims of the OAuth state value round-tripped through a provider.
type StateClaims struct {
	Nonce       string `json:"nonce"`
	Provider    string `json:"provider"`
	CallbackURL string `json:"callbackUrl"`
	jwt.RegisteredClaims
}

// GenerateSessionJWT signs session claims with HS256.
func GenerateSessionJWT(claims SessionClaims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ParseSessionJWT parses a session token, validates its signature and standard claims.
// An empty issuer skips the issuer check.
func ParseSessionJWT(tokenString string, key []byte, issuer string, opts ...jwt.ParserOption) (*SessionClaims, error) {
	claims := &SessionClaims{}
	if err := parseHS256(tokenString, claims, key, issuer, opts...); err != nil {
		return nil, err
	}
	return claims, nil
}

// GenerateStateJWT signs an OAuth state valid for ttl.
func GenerateStateJWT(nonce, provider, callbackURL, issuer string, ttl time.Duration, key []byte) (string, error) {
	now := time.Now()
	claims := StateClaims{
		Nonce:       nonce,
		Provider:    provider,
		CallbackURL: callbackURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ParseStateJWT parses and validates an OAuth state value.
func ParseStateJWT(tokenString string, key []byte, issuer string, opts ...jwt.ParserOption) (*StateClaims, error) {
	claims := &StateClaims{}
	if err := parseHS256(tokenString, claims, key, issuer, opts...); err != nil {
		return nil, err
	}
	if claims.Nonce == "" {
		return nil, errors.New("state is missing its nonce")
	}
	return claims, nil
}

func parseHS256(tokenString string, claims jwt.Claims, key []byte, issuer string, extra ...jwt.ParserOption) error {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	opts = append(opts, extra...)
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	}, opts...)
	if err != nil {
		return err // expired, signature invalid, etc.
	}
	if !token.Valid {
		return jwt.ErrTokenSignatureInvalid
	}
	return nil
}
