package jwt

import (
	"RecipeHub/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkTokenRoundTrip(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret")

	token, err := svc.GenerateLinkToken(42, PurposeResetPassword, "nonce-1", time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateLinkToken(token, PurposeResetPassword)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "nonce-1", claims.Nonce)
}

func TestLinkTokenRejectsOtherPurpose(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret")

	token, err := svc.GenerateLinkToken(1, PurposeVerifyEmail, "", time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateLinkToken(token, PurposeResetPassword)
	assert.ErrorIs(t, err, domain.ErrInvalidTokenPurpose)
}

func TestLinkTokenExpired(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret")

	token, err := svc.GenerateLinkToken(1, PurposeVerifyEmail, "", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateLinkToken(token, PurposeVerifyEmail)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestLinkTokenWrongSecret(t *testing.T) {
	token, err := NewJWTServiceWithSecret("one").GenerateLinkToken(1, PurposeVerifyEmail, "", time.Minute)
	require.NoError(t, err)

	_, err = NewJWTServiceWithSecret("two").ValidateLinkToken(token, PurposeVerifyEmail)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
