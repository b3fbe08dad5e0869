package util

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// VisitorClaims identify an anonymous browser session.
type VisitorClaims struct {
	VisitorID uuid.UUID `json:"vid"`
	jwt.RegisteredClaims
}

type VisitorTokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewVisitorTokenManager(secret string, ttl time.Duration) *VisitorTokenManager {
	return &VisitorTokenManager{secret: []byte(secret), ttl: ttl, issuer: "guideme"}
}

func (m *VisitorTokenManager) TTL() time.Duration {
	return m.ttl
}

func (m *VisitorTokenManager) Issue(visitorID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)
	claims := VisitorClaims{
		VisitorID: visitorID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   visitorID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (m *VisitorTokenManager) Parse(tokenString string) (*VisitorClaims, error) {
	claims := &VisitorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.VisitorID == uuid.Nil {
		return nil, errors.New("token missing visitor id")
	}
	return claims, nil
}
