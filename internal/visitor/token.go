// Package visitor issues the signed cookie that identifies an anonymous
// browser across requests.
package visitor

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"career-counsel/internal/util"
)

var ErrInvalidToken = errors.New("invalid visitor token")

const tokenType = "visitor"

// Claims carried by the visitor cookie.
type Claims struct {
	VisitorID string `json:"vid"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies visitor tokens with HS256.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is also the cookie lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue mints a fresh visitor id and its signed token.
func (i *Issuer) Issue() (visitorID, token string, err error) {
	visitorID = util.NewULID()
	token, err = i.Sign(visitorID)
	if err != nil {
		return "", "", err
	}
	return visitorID, token, nil
}

// Sign returns a token for an existing visitor id.
func (i *Issuer) Sign(visitorID string) (string, error) {
	now := i.now()
	claims := Claims{
		VisitorID: visitorID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   visitorID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign visitor token: %w", err)
	}
	return signed, nil
}

// Parse verifies tokenString and returns the visitor id it carries.
func (i *Issuer) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != tokenType || !util.IsULID(claims.VisitorID) {
		return "", ErrInvalidToken
	}
	return claims.VisitorID, nil
}
