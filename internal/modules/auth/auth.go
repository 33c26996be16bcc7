// Package auth issues the signed tokens that carry a shopper's cart session
// id between requests. There are no user accounts.
package auth

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// HeaderSession carries the session token on requests and responses.
const HeaderSession = "X-Cart-Session"

// ErrInvalidToken is returned for tokens that are malformed, expired or
// signed with another key.
var ErrInvalidToken = errors.New("invalid session token")

// Issuer signs and verifies HS256 session tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// NewSession creates a session id and its token.
func (i *Issuer) NewSession() (sessionID, token string, err error) {
	sessionID = uuid.NewString()
	token, err = i.Issue(sessionID)
	return sessionID, token, err
}

func (i *Issuer) Issue(sessionID string) (string, error) {
	now := i.now()
	claims := &jwt.StandardClaims{
		Subject:   sessionID,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(i.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}
	return signed, nil
}

// Verify returns the session id carried by token.
func (i *Issuer) Verify(token string) (string, error) {
	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.Wrap(ErrInvalidToken, "verify")
	}
	if !claims.VerifyExpiresAt(i.now().Unix(), true) {
		return "", errors.Wrap(ErrInvalidToken, "expired")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", errors.Wrap(ErrInvalidToken, "subject")
	}
	return claims.Subject, nil
}
