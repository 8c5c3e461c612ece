package auth

import (
	"context"
	"net/http"

	"aep-proxy/internal/config"
)

// Header names sent on every AEP request.
const (
	HeaderAPIKey      = "x-api-key"
	HeaderOrgID       = "x-gw-ims-org-id"
	HeaderSandboxName = "x-sandbox-name"
)

// TokenProvider returns a bearer token, acquiring one if needed.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// HeaderBuilder combines the current token with the configured credentials.
type HeaderBuilder struct {
	tokens TokenProvider
	creds  config.Credentials
}

// NewHeaderBuilder creates a HeaderBuilder.
func NewHeaderBuilder(tokens TokenProvider, creds config.Credentials) *HeaderBuilder {
	return &HeaderBuilder{tokens: tokens, creds: creds}
}

// Build returns a fresh header set. Any token failure is returned unchanged.
func (b *HeaderBuilder) Build(ctx context.Context) (http.Header, error) {
	token, err := b.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	h := make(http.Header, 6)
	h.Set("Authorization", "Bearer "+token)
	h.Set(HeaderAPIKey, b.creds.ClientID)
	h.Set(HeaderOrgID, b.creds.OrgID)
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	if b.creds.SandboxName != "" {
		h.Set(HeaderSandboxName, b.creds.SandboxName)
	}
	return h, nil
}
