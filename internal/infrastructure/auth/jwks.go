package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
)

const fetchTimeout = 10 * time.Second

// KeySetCache stores the raw JWKS document between fetches. AllowRefetch
// rate-limits fetches triggered by tokens carrying an unknown key id.
type KeySetCache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, doc []byte) error
	AllowRefetch(ctx context.Context) (bool, error)
}

// JWKSVerifier validates RS256 tokens issued by an external identity
// provider, resolving signing keys from its published JWKS endpoint.
type JWKSVerifier struct {
	uri      string
	issuer   string
	audience string
	cache    KeySetCache
	client   *http.Client
}

func NewJWKSVerifier(uri, issuer, audience string, cache KeySetCache) *JWKSVerifier {
	return &JWKSVerifier{
		uri:      uri,
		issuer:   issuer,
		audience: audience,
		cache:    cache,
		client:   &http.Client{Timeout: fetchTimeout},
	}
}

type jwksDocument struct {
	Keys []jwksKey `json:"keys"`
}

type jwksKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func (v *JWKSVerifier) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("token missing key id")
		}
		return v.signingKey(ctx, kid)
	}, opts...)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return identityFromClaims(claims)
}

// signingKey resolves kid from the cached key set, re-fetching once when the
// id is unknown. A key id that stays unknown after a fresh fetch is rejected
// without hammering the issuer again until the cooldown expires.
func (v *JWKSVerifier) signingKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	doc, err := v.cachedKeySet(ctx)
	if err == nil {
		if key, ok := doc.find(kid); ok {
			return key, nil
		}
	}

	allowed, allowErr := v.cache.AllowRefetch(ctx)
	if allowErr != nil {
		return nil, allowErr
	}
	if !allowed {
		return nil, fmt.Errorf("unknown signing key %q", kid)
	}

	doc, err = v.fetchKeySet(ctx)
	if err != nil {
		return nil, err
	}
	if key, ok := doc.find(kid); ok {
		return key, nil
	}
	return nil, fmt.Errorf("unknown signing key %q", kid)
}

func (v *JWKSVerifier) cachedKeySet(ctx context.Context) (*jwksDocument, error) {
	raw, err := v.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	var doc jwksDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode cached key set: %w", err)
	}
	return &doc, nil
}

func (v *JWKSVerifier) fetchKeySet(ctx context.Context) (*jwksDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.uri, nil)
	if err != nil {
		return nil, fmt.Errorf("build jwks request: %w", err)
	}

	res, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch jwks: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch jwks: unexpected status %d", res.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read jwks: %w", err)
	}

	var doc jwksDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode jwks: %w", err)
	}

	if err := v.cache.Set(ctx, raw); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *jwksDocument) find(kid string) (*rsa.PublicKey, bool) {
	for _, k := range d.Keys {
		if k.Kid != kid || k.Kty != "RSA" {
			continue
		}
		key, err := k.publicKey()
		if err != nil {
			continue
		}
		return key, true
	}
	return nil, false
}

func (k jwksKey) publicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}
