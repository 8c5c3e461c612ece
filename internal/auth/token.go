// Package auth obtains Adobe IMS access tokens and builds the header set that
// every AEP call carries.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/singleflight"

	"aep-proxy/internal/config"
	"aep-proxy/internal/metrics"
)

// AuthError reports a failed token exchange. Its message never includes
// credentials or the IMS response; the cause is available through Unwrap.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return "Failed to obtain access token" }

func (e *AuthError) Unwrap() error { return e.Err }

// TokenSource performs one token exchange per call, without caching.
type TokenSource interface {
	FetchToken(ctx context.Context) (string, error)
}

// IMSTokenSource exchanges client credentials for an access token at the IMS
// v3 endpoint. The request body is form-encoded with client_id and
// client_secret sent as parameters.
type IMSTokenSource struct {
	config     *clientcredentials.Config
	httpClient *http.Client
}

// NewIMSTokenSource creates a token source for the given credentials.
func NewIMSTokenSource(creds config.Credentials, httpClient *http.Client) *IMSTokenSource {
	cfg := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     creds.TokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	// IMS expects the comma separated list as a single scope value.
	if creds.Scope != "" {
		cfg.Scopes = []string{creds.Scope}
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.DefaultHTTPTimeout}
	}
	return &IMSTokenSource{config: cfg, httpClient: httpClient}
}

// FetchToken performs the client-credentials grant.
func (s *IMSTokenSource) FetchToken(ctx context.Context) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	tok, err := s.config.Token(ctx)
	if err != nil {
		metrics.TokenGrantsTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
		slog.Warn("ims token request failed", "token_url", s.config.TokenURL, "error", err)
		return "", &AuthError{Err: err}
	}
	metrics.TokenGrantsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	slog.Info("obtained ims access token", "token_type", tok.TokenType)
	return tok.AccessToken, nil
}

// TokenCache holds at most one access token for the life of the process.
// Tokens are never expired or refreshed once cached. Concurrent misses share
// a single in-flight acquisition; failures are not cached.
type TokenCache struct {
	source TokenSource

	mu     sync.RWMutex
	token  string
	flight singleflight.Group
}

// NewTokenCache creates an empty cache backed by source.
func NewTokenCache(source TokenSource) *TokenCache {
	return &TokenCache{source: source}
}

// Token returns the cached token, acquiring it first if the cache is empty.
// The shared acquisition is not cancelled by any single caller; each caller
// stops waiting when its own ctx is done.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	if tok, ok := c.cached(); ok {
		return tok, nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := c.flight.DoChan("access_token", func() (any, error) {
		if tok, ok := c.cached(); ok {
			return tok, nil
		}
		tok, err := c.source.FetchToken(fetchCtx)
		if err != nil {
			return "", err
		}
		if tok == "" {
			return "", errors.New("token response carried an empty access token")
		}
		c.mu.Lock()
		c.token = tok
		c.mu.Unlock()
		return tok, nil
	})

	select {
	case <-ctx.Done():
		return "", &AuthError{Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			var authErr *AuthError
			if !errors.As(res.Err, &authErr) {
				return "", &AuthError{Err: res.Err}
			}
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (c *TokenCache) cached() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.token != ""
}
