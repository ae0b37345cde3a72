// Package session implements the admin authentication gate: a single binary
// flag that survives reloads, guarded by a fixed credential pair.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Nikolino98/cordoba-casas-connect-main/internal/auth"
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/config"
)

// ErrInvalidCredentials is returned when the submitted pair does not match.
var ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")

// Store persists the authenticated flag across restarts and page reloads.
type Store interface {
	Get(ctx context.Context) (bool, error)
	Set(ctx context.Context) error
	Clear(ctx context.Context) error
}

const flagKey = "adminAuthenticated"

// RedisStore keeps the flag in Redis.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context) (bool, error) {
	val, err := s.client.Get(ctx, flagKey).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read session flag: %w", err)
	}
	return val == "true", nil
}

func (s *RedisStore) Set(ctx context.Context) error {
	if err := s.client.Set(ctx, flagKey, "true", 0).Err(); err != nil {
		return fmt.Errorf("failed to persist session flag: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, flagKey).Err(); err != nil {
		return fmt.Errorf("failed to clear session flag: %w", err)
	}
	return nil
}

// Gate decides whether the admin panel is reachable. There is exactly one
// admin identity; no accounts, rate limiting or lockout.
type Gate struct {
	cfg   *config.Config
	store Store
}

func NewGate(cfg *config.Config, store Store) *Gate {
	return &Gate{cfg: cfg, store: store}
}

// Login checks the submitted pair against the configured credentials and,
// on success, persists the flag and issues a session token.
func (g *Gate) Login(ctx context.Context, username, password string) (string, error) {
	if username != g.cfg.AdminUsername ||
		!auth.VerifyPassword(password, g.cfg.AdminPassword, g.cfg.AdminPasswordHash) {
		return "", ErrInvalidCredentials
	}
	if err := g.store.Set(ctx); err != nil {
		return "", err
	}
	token, err := auth.GenerateAdminToken(g.cfg.JwtSecret, g.cfg.JwtTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Logout clears the persisted flag.
func (g *Gate) Logout(ctx context.Context) error {
	return g.store.Clear(ctx)
}

// IsAuthenticated reads the persisted flag.
func (g *Gate) IsAuthenticated(ctx context.Context) (bool, error) {
	return g.store.Get(ctx)
}
