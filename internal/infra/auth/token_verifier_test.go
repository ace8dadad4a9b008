package auth

import (
	"context"
	"testing"
	"time"

	"usersvc/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_token_secret_key_very_long_for_testing"

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestHMACTokenVerifier_Valid(t *testing.T) {
	verifier, err := NewHMACTokenVerifier(config.LocalAuthConfig{TokenSecret: testSecret, Issuer: "dev-issuer"})
	require.NoError(t, err)

	token := signHS256(t, testSecret, jwt.MapClaims{
		"sub":   "0190a4f2-7b1c-7c3e-9a55-3f1f0d2b9e11",
		"iss":   "dev-issuer",
		"exp":   time.Now().Add(time.Minute).Unix(),
		"roles": []string{"Admin"},
	})

	principal, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "0190a4f2-7b1c-7c3e-9a55-3f1f0d2b9e11", principal.Subject)
	assert.True(t, principal.HasRole("Admin"))
}

func TestHMACTokenVerifier_Rejects(t *testing.T) {
	verifier, err := NewHMACTokenVerifier(config.LocalAuthConfig{TokenSecret: testSecret, Issuer: "dev-issuer"})
	require.NoError(t, err)

	valid := jwt.MapClaims{"sub": "abc", "iss": "dev-issuer", "exp": time.Now().Add(time.Minute).Unix()}

	tests := map[string]string{
		"garbage":      "clearly-not-a-jwt-token-format",
		"wrong secret": signHS256(t, "another-secret", valid),
		"expired": signHS256(t, testSecret, jwt.MapClaims{
			"sub": "abc", "iss": "dev-issuer", "exp": time.Now().Add(-time.Minute).Unix(),
		}),
		"no expiry":    signHS256(t, testSecret, jwt.MapClaims{"sub": "abc", "iss": "dev-issuer"}),
		"wrong issuer": signHS256(t, testSecret, jwt.MapClaims{"sub": "abc", "iss": "evil", "exp": time.Now().Add(time.Minute).Unix()}),
		"no subject":   signHS256(t, testSecret, jwt.MapClaims{"iss": "dev-issuer", "exp": time.Now().Add(time.Minute).Unix()}),
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			principal, err := verifier.Verify(context.Background(), token)
			assert.Error(t, err)
			assert.Nil(t, principal)
		})
	}
}

func TestHMACTokenVerifier_RejectsNoneAlgorithm(t *testing.T) {
	verifier, err := NewHMACTokenVerifier(config.LocalAuthConfig{TokenSecret: testSecret})
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "abc",
		"exp": time.Now().Add(time.Minute).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestHMACTokenVerifier_EmptySecret(t *testing.T) {
	verifier, err := NewHMACTokenVerifier(config.LocalAuthConfig{})
	assert.Error(t, err)
	assert.Nil(t, verifier)
	assert.Contains(t, err.Error(), "local token secret must be provided")
}
