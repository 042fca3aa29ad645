package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	jwksTTL      = 10 * time.Minute
	jwksCooldown = time.Minute
)

// ErrJWKSCacheMiss is returned when no key set document is cached.
var ErrJWKSCacheMiss = errors.New("jwks: cache miss")

// JWKSCache stores the raw JWKS document fetched from the issuer, plus a
// cooldown marker that rate-limits re-fetches after an unknown key id.
type JWKSCache struct {
	client *redis.Client
	uri    string
}

// NewJWKSCache creates a JWKSCache scoped to one JWKS endpoint.
func NewJWKSCache(client *redis.Client, uri string) *JWKSCache {
	return &JWKSCache{client: client, uri: uri}
}

// Get returns the cached JWKS document, or ErrJWKSCacheMiss when absent.
func (c *JWKSCache) Get(ctx context.Context) ([]byte, error) {
	raw, err := c.client.Get(ctx, c.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrJWKSCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("jwks cache get: %w", err)
	}
	return raw, nil
}

// Set stores the JWKS document (expires after jwksTTL).
func (c *JWKSCache) Set(ctx context.Context, doc []byte) error {
	return c.client.Set(ctx, c.key(), doc, jwksTTL).Err()
}

// AllowRefetch reports whether an on-miss re-fetch may run now, and if so,
// starts the cooldown window. It uses SETNX so concurrent instances agree.
func (c *JWKSCache) AllowRefetch(ctx context.Context) (bool, error) {
	ok, err := c.client.SetNX(ctx, c.cooldownKey(), "1", jwksCooldown).Result()
	if err != nil {
		return false, fmt.Errorf("jwks cooldown: %w", err)
	}
	return ok, nil
}

func (c *JWKSCache) key() string {
	return fmt.Sprintf("jwks:doc:%s", c.uri)
}

func (c *JWKSCache) cooldownKey() string {
	return fmt.Sprintf("jwks:cooldown:%s", c.uri)
}
