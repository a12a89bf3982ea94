package service

import (
	"fmt"
	"time"

	"restrofi/storefront-svc/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const staffTokenIssuer = "storefront-svc"

var staffSigningMethod = jwt.SigningMethodHS256

// StaffClaims is carried by the token handed out when the gate authorizes.
type StaffClaims struct {
	RestaurantID string `json:"restaurant_id"`
	SessionID    string `json:"session_id"`
	jwt.RegisteredClaims
}

// StaffTokenParser authenticates staff console requests.
type StaffTokenParser interface {
	Parse(token string) (*StaffClaims, error)
}

type StaffTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ StaffTokenParser = (*StaffTokens)(nil)

func NewStaffTokens(secret string, ttl time.Duration) *StaffTokens {
	return &StaffTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *StaffTokens) Issue(restaurantID, sessionID string) (string, time.Time, error) {
	if len(t.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("staff token secret is required")
	}
	now := t.now()
	expires := now.Add(t.ttl)
	claims := StaffClaims{
		RestaurantID: restaurantID,
		SessionID:    sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    staffTokenIssuer,
			Subject:   restaurantID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(staffSigningMethod, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing staff token: %w", err)
	}
	return signed, expires, nil
}

func (t *StaffTokens) Parse(token string) (*StaffClaims, error) {
	claims := &StaffClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(tok *jwt.Token) (interface{}, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{staffSigningMethod.Alg()}),
		jwt.WithIssuer(staffTokenIssuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeUnauthorized, err, "invalid staff token")
	}
	return claims, nil
}
