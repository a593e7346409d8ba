package middleware_test

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

	"github.com/suitter-labs/suitter-indexer/internal/api/middleware"
)

func generateKey(t *testing.T) (*rsa.PrivateKey, string) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate_APIKey(t *testing.T) {
	cfg := middleware.AuthConfig{APIKeys: []string{"", "secret"}}

	result, err := middleware.Authenticate("ApiKey secret", cfg)
	require.NoError(t, err)
	assert.Equal(t, middleware.AUTH_TYPE_APIKEY, result.AuthType)

	_, err = middleware.Authenticate("ApiKey wrong", cfg)
	assert.Error(t, err)

	_, err = middleware.Authenticate("ApiKey ", cfg)
	assert.Error(t, err)

	_, err = middleware.Authenticate("", cfg)
	assert.Error(t, err)

	_, err = middleware.Authenticate("Basic abc", cfg)
	assert.Error(t, err)
}

func TestAuthenticate_JWT(t *testing.T) {
	key, publicPEM := generateKey(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM}

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "0x111",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	result, err := middleware.Authenticate("Bearer "+valid, cfg)
	require.NoError(t, err)
	assert.Equal(t, middleware.AUTH_TYPE_JWT, result.AuthType)
	assert.Equal(t, "0x111", result.AuthSubject)

	expired := signToken(t, key, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	_, err = middleware.Authenticate("Bearer "+expired, cfg)
	assert.Error(t, err)

	otherKey, _ := generateKey(t)
	forged := signToken(t, otherKey, jwt.RegisteredClaims{Subject: "0x111"})
	_, err = middleware.Authenticate("Bearer "+forged, cfg)
	assert.Error(t, err)

	_, err = middleware.Authenticate("Bearer "+valid, middleware.AuthConfig{})
	assert.Error(t, err)
}

func TestAuthConfig_Enabled(t *testing.T) {
	assert.False(t, middleware.AuthConfig{}.Enabled())
	assert.False(t, middleware.AuthConfig{APIKeys: []string{""}}.Enabled())
	assert.True(t, middleware.AuthConfig{APIKeys: []string{"k"}}.Enabled())
	assert.True(t, middleware.AuthConfig{JWTPublicKey: "pem"}.Enabled())
}
