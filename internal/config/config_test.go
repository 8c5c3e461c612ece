package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AEP_CLIENT_ID", "client-id")
	t.Setenv("AEP_CLIENT_SECRET", "client-secret")
	t.Setenv("AEP_ORG_ID", "org@AdobeOrg")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AEP_BASE_URL", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Credentials.BaseURL)
	assert.Equal(t, DefaultIMSTokenURL, cfg.Credentials.TokenURL)
	assert.Equal(t, DefaultScope, cfg.Credentials.Scope)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, ":3000", cfg.ListenAddr())
	assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
	assert.Equal(t, "client-id", cfg.Credentials.ClientID)
	assert.Equal(t, "client-secret", cfg.Credentials.ClientSecret)
	assert.Equal(t, "org@AdobeOrg", cfg.Credentials.OrgID)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AEP_BASE_URL", "http://localhost:9999/")
	t.Setenv("PORT", "8081")
	t.Setenv("AEP_HTTP_TIMEOUT", "5s")
	t.Setenv("AEP_SANDBOX_NAME", "dev")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.Credentials.BaseURL, "trailing slash should be trimmed")
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "dev", cfg.Credentials.SandboxName)
}

func TestLoad_MissingCredentials(t *testing.T) {
	testCases := []struct {
		name    string
		unset   string
		message string
	}{
		{"missing client id", "AEP_CLIENT_ID", "AEP_CLIENT_ID is required"},
		{"missing client secret", "AEP_CLIENT_SECRET", "AEP_CLIENT_SECRET is required"},
		{"missing org id", "AEP_ORG_ID", "AEP_ORG_ID is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.unset, "")

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("non-numeric port", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "abc")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("port out of range", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "70000")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid port")
	})

	t.Run("bad timeout", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("AEP_HTTP_TIMEOUT", "soon")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid AEP_HTTP_TIMEOUT")
	})
}

func TestCredentials_StringOmitsSecret(t *testing.T) {
	creds := Credentials{BaseURL: DefaultBaseURL, ClientID: "id", ClientSecret: "s3cr3t", OrgID: "org"}
	assert.NotContains(t, creds.String(), "s3cr3t")
	assert.Contains(t, creds.String(), "id")
}
