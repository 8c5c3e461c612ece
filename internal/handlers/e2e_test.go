package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aep-proxy/internal/aep"
	"aep-proxy/internal/auth"
	"aep-proxy/internal/config"
)

type fixedToken string

func (f fixedToken) Token(context.Context) (string, error) { return string(f), nil }

// newProxy wires the real gateway against baseURL.
func newProxy(baseURL string) *gin.Engine {
	creds := config.Credentials{BaseURL: baseURL, ClientID: "client", ClientSecret: "secret", OrgID: "org"}
	headers := auth.NewHeaderBuilder(fixedToken("e2e-token"), creds)
	return NewRouter(NewAPI(aep.NewClient(creds.BaseURL, headers, nil)))
}

func TestEndToEnd_CreateSegmentEchoesUpstream(t *testing.T) {
	var received map[string]any
	var authHeader string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/data/core/ups/segments", r.URL.Path)
		authHeader = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(body)
	}))
	defer upstream.Close()

	router := newProxy(upstream.URL)
	body := `{"name":"seg1","expression":{"type":"PQL","value":{}},"schema":{"name":"_xdm.context.profile"}}`

	w := performRequest(router, http.MethodPost, "/api/aep/segments", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, body, w.Body.String())
	assert.Equal(t, "seg1", received["name"])
	assert.Equal(t, "Bearer e2e-token", authHeader)
}

func TestEndToEnd_CreateSchemaKeepsExtensionFields(t *testing.T) {
	var received string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"$id":"https://ns.adobe.com/tenant/schemas/1"}`)
	}))
	defer upstream.Close()

	body := `{"title":"T","type":"object","properties":{},"allOf":[{"$ref":"https://ns.adobe.com/xdm/context/profile"}],"meta:class":"x"}`
	w := performRequest(newProxy(upstream.URL), http.MethodPost, "/api/aep/schemas", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, body, received)
}

func TestEndToEnd_UpstreamNotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"type":"http://ns.adobe.com/aep/errors/XDM-1010-404","title":"Resource not found"}`)
	}))
	defer upstream.Close()

	w := performRequest(newProxy(upstream.URL), http.MethodGet, "/api/aep/schemas", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]any{
		"type":  "http://ns.adobe.com/aep/errors/XDM-1010-404",
		"title": "Resource not found",
	}, resp["error"])
	assert.Equal(t, float64(404), resp["status"])
}

func TestEndToEnd_ConnectionRefused(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	baseURL := upstream.URL
	upstream.Close()

	router := newProxy(baseURL)
	requests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/aep/schemas", ""},
		{http.MethodPost, "/api/aep/schemas", `{"title":"T","type":"object","properties":{}}`},
		{http.MethodGet, "/api/aep/datasets", ""},
		{http.MethodPost, "/api/aep/datasets", `{"name":"ds","schemaRef":{"id":"s","contentType":"c"}}`},
		{http.MethodGet, "/api/aep/segments", ""},
		{http.MethodPost, "/api/aep/segments", `{"name":"s","expression":{"type":"PQL","value":{}},"schema":{"name":"x"}}`},
		{http.MethodPost, "/api/aep/ingest/ds", `{"a":1}`},
		{http.MethodGet, "/api/aep/profiles/123?namespace=ecid", ""},
		{http.MethodPost, "/api/aep/query", `{"query":"SELECT 1"}`},
		{http.MethodGet, "/api/aep/destinations", ""},
		{http.MethodPost, "/api/aep/destinations/d/activate/s", ""},
	}

	for _, r := range requests {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			w := performRequest(router, r.method, r.path, r.body)
			assert.Equal(t, http.StatusServiceUnavailable, w.Code)
			assert.JSONEq(t, `{"error":"Service Unavailable","message":"Could not connect to Adobe API"}`, w.Body.String())
		})
	}
}

func TestEndToEnd_TokenFailure(t *testing.T) {
	var upstreamCalls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&upstreamCalls, 1)
	}))
	defer upstream.Close()

	ims := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":"invalid_client"}`)
	}))
	defer ims.Close()

	creds := config.Credentials{BaseURL: upstream.URL, ClientID: "client", ClientSecret: "very-secret", OrgID: "org", TokenURL: ims.URL}
	headers := auth.NewHeaderBuilder(auth.NewTokenCache(auth.NewIMSTokenSource(creds, ims.Client())), creds)
	router := NewRouter(NewAPI(aep.NewClient(creds.BaseURL, headers, upstream.Client())))

	w := performRequest(router, http.MethodGet, "/api/aep/destinations", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error","message":"Failed to obtain access token"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "very-secret")
	assert.Equal(t, int32(0), atomic.LoadInt32(&upstreamCalls))
}
