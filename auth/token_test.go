package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/dashboard-backend/errs"
)

func newTestTokenService(t *testing.T, secret string) *TokenService {
	t.Helper()
	svc, err := NewTokenService(secret, time.Hour)
	require.NoError(t, err)
	return svc
}

func TestNewTokenServiceRequiresSecret(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.Error(t, err)
}

func TestMintVerifyRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	principal := Principal{
		Subject:  "12345",
		Name:     "Ada",
		Email:    "ada@example.com",
		Provider: ProviderGitHub,
	}

	token, err := svc.Mint(principal, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, principal, *got)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	// Minted two hours in the past with a one hour ttl.
	token, err := svc.Mint(Principal{Subject: "1"}, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, verifyErr := svc.Verify(token)
	require.Error(t, verifyErr)
	assert.True(t, errors.Is(verifyErr, errs.ErrExpiredToken))
}

func TestVerifyWrongSecret(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")
	forged := newTestTokenService(t, "other-secret")

	token, err := svc.Mint(Principal{Subject: "1"}, time.Now())
	require.NoError(t, err)

	_, verifyErr := forged.Verify(token)
	require.Error(t, verifyErr)
	assert.True(t, errors.Is(verifyErr, errs.ErrInvalidToken))
}

func TestVerifyGarbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	_, err := svc.Verify("not-a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidToken))
}

func TestVerifyMissing(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	_, err := svc.Verify("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrMissingToken))
}
