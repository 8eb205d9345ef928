// internal/pkg/auth/session_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/market-store-gateway/internal/config"
)

func testConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Market Store Gateway"
	cfg.Session.Secret = "0123456789abcdef0123456789abcdef"
	cfg.Session.TokenTTL = ttl
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewSessionManager(testConfig(time.Hour))

	sessionID := m.NewSessionID()
	token, err := m.GenerateToken(sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	m := NewSessionManager(testConfig(time.Hour))

	_, err := m.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewSessionManager(testConfig(time.Hour))
	token, err := issuer.GenerateToken("session-1")
	require.NoError(t, err)

	other := testConfig(time.Hour)
	other.Session.Secret = "ffffffffffffffffffffffffffffffff"
	verifier := NewSessionManager(other)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	m := NewSessionManager(testConfig(-time.Minute))

	token, err := m.GenerateToken("session-1")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewSessionIDsAreUnique(t *testing.T) {
	m := NewSessionManager(testConfig(time.Hour))

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := m.NewSessionID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
