package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikolino98/cordoba-casas-connect-main/internal/auth"
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/config"
)

type memStore struct {
	flag bool
}

func (m *memStore) Get(ctx context.Context) (bool, error) { return m.flag, nil }
func (m *memStore) Set(ctx context.Context) error         { m.flag = true; return nil }
func (m *memStore) Clear(ctx context.Context) error       { m.flag = false; return nil }

func testConfig() *config.Config {
	return &config.Config{
		AdminUsername: "admin223",
		AdminPassword: "2232admin",
		JwtSecret:     "test-secret",
		JwtTTL:        time.Hour,
	}
}

func TestLoginWithValidPair(t *testing.T) {
	store := &memStore{}
	gate := NewGate(testConfig(), store)

	token, err := gate.Login(context.Background(), "admin223", "2232admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	ok, err := gate.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	claims, err := auth.ValidateToken(token, "test-secret")
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestLoginRejectsWrongPair(t *testing.T) {
	store := &memStore{}
	gate := NewGate(testConfig(), store)

	cases := [][2]string{
		{"admin223", "wrong"},
		{"wrong", "2232admin"},
		{"", ""},
	}
	for _, c := range cases {
		_, err := gate.Login(context.Background(), c[0], c[1])
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	ok, err := gate.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionSurvivesReload(t *testing.T) {
	store := &memStore{}
	gate := NewGate(testConfig(), store)

	_, err := gate.Login(context.Background(), "admin223", "2232admin")
	require.NoError(t, err)

	// A reload constructs a fresh gate over the same persisted store.
	reloaded := NewGate(testConfig(), store)
	ok, err := reloaded.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLogoutClearsFlag(t *testing.T) {
	store := &memStore{}
	gate := NewGate(testConfig(), store)

	_, err := gate.Login(context.Background(), "admin223", "2232admin")
	require.NoError(t, err)
	require.NoError(t, gate.Logout(context.Background()))

	ok, err := gate.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginWithHashedCredential(t *testing.T) {
	hash, err := auth.HashPassword("otherpass")
	require.NoError(t, err)

	cfg := testConfig()
	cfg.AdminPasswordHash = hash
	gate := NewGate(cfg, &memStore{})

	_, err = gate.Login(context.Background(), "admin223", "otherpass")
	assert.NoError(t, err)

	// The plaintext pair no longer matches once a hash is configured.
	_, err = gate.Login(context.Background(), "admin223", "2232admin")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
