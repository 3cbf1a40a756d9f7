package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateTestKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pubDER, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)

	pubPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubDER,
	})

	return privateKey, string(pubPEM)
}

func signTestJWT(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestAuthenticate_APIKey(t *testing.T) {
	cfg := AuthConfig{APIKeys: []string{"key1", "key2"}}

	tests := []struct {
		name       string
		authHeader string
		wantOK     bool
	}{
		{"valid key", "ApiKey key1", true},
		{"second valid key", "apikey key2", true},
		{"invalid key", "ApiKey nope", false},
		{"missing header", "", false},
		{"malformed header", "key1", false},
		{"unsupported scheme", "Basic dXNlcjpwYXNz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Authenticate(tt.authHeader, cfg)
			assert.Equal(t, tt.wantOK, result.Success)
			if tt.wantOK {
				assert.Equal(t, "apikey", result.AuthType)
			} else {
				assert.Error(t, result.Error)
			}
		})
	}
}

func TestAuthenticate_APIKey_NoneConfigured(t *testing.T) {
	result := Authenticate("ApiKey anything", AuthConfig{})
	assert.False(t, result.Success)
}

func TestAuthenticate_JWT(t *testing.T) {
	privateKey, pubPEM := generateTestKeyPair(t)
	cfg := AuthConfig{JWTPublicKey: pubPEM}

	t.Run("valid token", func(t *testing.T) {
		token := signTestJWT(t, privateKey, jwt.RegisteredClaims{
			Subject:   "admin@tunestream",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		result := Authenticate("Bearer "+token, cfg)
		require.True(t, result.Success)
		assert.Equal(t, "jwt", result.AuthType)
		assert.Equal(t, "admin@tunestream", result.AuthSubject)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signTestJWT(t, privateKey, jwt.RegisteredClaims{
			Subject:   "admin@tunestream",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})

		result := Authenticate("Bearer "+token, cfg)
		assert.False(t, result.Success)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		otherKey, _ := generateTestKeyPair(t)
		token := signTestJWT(t, otherKey, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		result := Authenticate("Bearer "+token, cfg)
		assert.False(t, result.Success)
	})

	t.Run("HS256 token rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		signed, err := token.SignedString([]byte("shared-secret"))
		require.NoError(t, err)

		result := Authenticate("Bearer "+signed, cfg)
		assert.False(t, result.Success)
	})

	t.Run("no public key configured", func(t *testing.T) {
		token := signTestJWT(t, privateKey, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		result := Authenticate("Bearer "+token, AuthConfig{})
		assert.False(t, result.Success)
	})
}
