package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/devfolio/dashboard-backend/errs"
)

const defaultTokenTTL = 24 * time.Hour

// Principal identifies an authenticated dashboard user. There is no role
// granularity: holding a valid credential grants every mutation.
type Principal struct {
	Subject   string `json:"sub"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Provider  string `json:"provider"`
}

type sessionClaims struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Provider  string `json:"provider"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies the signed session credential that gates
// every write. The secret is server-held; verification never panics and never
// returns a principal for an expired or tampered token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("auth secret must not be empty")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Mint issues a signed session token for the principal.
func (s *TokenService) Mint(p Principal, now time.Time) (string, error) {
	claims := sessionClaims{
		Name:      p.Name,
		Email:     p.Email,
		AvatarURL: p.AvatarURL,
		Provider:  p.Provider,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded principal.
// Every failure comes back as a 401-mapped error, never a panic.
func (s *TokenService) Verify(tokenString string) (*Principal, error) {
	if tokenString == "" {
		return nil, errs.NewMissingTokenError()
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.NewExpiredTokenError()
		}
		return nil, errs.NewInvalidTokenError()
	}
	if !token.Valid {
		return nil, errs.NewInvalidTokenError()
	}

	return &Principal{
		Subject:   claims.Subject,
		Name:      claims.Name,
		Email:     claims.Email,
		AvatarURL: claims.AvatarURL,
		Provider:  claims.Provider,
	}, nil
}
