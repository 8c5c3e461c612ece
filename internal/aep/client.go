// Package aep is the gateway to the Adobe Experience Platform HTTP API. Each
// method issues exactly one upstream call and relays the response body
// unchanged; no envelope key is unwrapped for any endpoint.
package aep

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"aep-proxy/internal/config"
	"aep-proxy/internal/metrics"
	"aep-proxy/internal/models"
)

// Upstream paths, relative to the configured base URL.
const (
	SchemasPath      = "/data/foundation/schemaregistry/schemas"
	DatasetsPath     = "/data/foundation/catalog/datasets"
	SegmentsPath     = "/data/core/ups/segments"
	BatchesPath      = "/data/foundation/import/batches"
	ProfileEntities  = "/data/core/ups/access/entities"
	QueriesPath      = "/data/foundation/query/queries"
	DestinationsPath = "/data/core/activation/destinations"

	ProfileSchema = "https://ns.adobe.com/xdm/context/profile"

	// The schema registry lists only when asked for this media type.
	schemaListAccept = "application/vnd.adobe.xed-id+json"
)

// HeaderSource supplies the authenticated header set for one request.
type HeaderSource interface {
	Build(ctx context.Context) (http.Header, error)
}

// Client issues calls against AEP.
type Client struct {
	BaseURL    string
	HttpClient *http.Client
	headers    HeaderSource
}

// NewClient creates a gateway rooted at baseURL.
func NewClient(baseURL string, headers HeaderSource, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.DefaultHTTPTimeout}
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HttpClient: httpClient,
		headers:    headers,
	}
}

// ListParams carries optional pagination. Zero values are not forwarded.
type ListParams struct {
	Limit  int
	Offset int
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	return v
}

// ListSchemas lists schemas from the schema registry.
func (c *Client) ListSchemas(ctx context.Context, params ListParams) (json.RawMessage, error) {
	return c.do(ctx, call{
		operation: "listSchemas",
		method:    http.MethodGet,
		path:      SchemasPath,
		query:     params.values(),
		accept:    schemaListAccept,
	})
}

// CreateSchema creates a schema. The body is sent as is.
func (c *Client) CreateSchema(ctx context.Context, schema json.RawMessage) (json.RawMessage, error) {
	return c.do(ctx, call{operation: "createSchema", method: http.MethodPost, path: SchemasPath, body: schema})
}

// ListDatasets lists catalog datasets.
func (c *Client) ListDatasets(ctx context.Context, params ListParams) (json.RawMessage, error) {
	return c.do(ctx, call{operation: "listDatasets", method: http.MethodGet, path: DatasetsPath, query: params.values()})
}

// CreateDataset creates a catalog dataset. The body is sent as is.
func (c *Client) CreateDataset(ctx context.Context, dataset json.RawMessage) (json.RawMessage, error) {
	return c.do(ctx, call{operation: "createDataset", method: http.MethodPost, path: DatasetsPath, body: dataset})
}

// ListSegments lists segment definitions.
func (c *Client) ListSegments(ctx context.Context, params ListParams) (json.RawMessage, error) {
	return c.do(ctx, call{operation: "listSegments", method: http.MethodGet, path: SegmentsPath, query: params.values()})
}

// CreateSegment creates a segment definition. The body is sent as is.
func (c *Client) CreateSegment(ctx context.Context, segment json.RawMessage) (json.RawMessage, error) {
	return c.do(ctx, call{operation: "createSegment", method: http.MethodPost, path: SegmentsPath, body: segment})
}

// IngestData posts an arbitrary payload for a dataset. The payload is sent as is.
func (c *Client) IngestData(ctx context.Context, datasetID string, payload json.RawMessage) (json.RawMessage, error) {
	return c.do(ctx, call{
		operation: "ingestData",
		method:    http.MethodPost,
		path:      BatchesPath + "/" + url.PathEscape(datasetID) + "/datasets",
		body:      payload,
	})
}

// GetUnifiedProfile looks up a profile entity by identity. namespace may be empty.
func (c *Client) GetUnifiedProfile(ctx context.Context, identityValue, namespace string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("schema", ProfileSchema)
	query.Set("entityId", identityValue)
	if namespace != "" {
		query.Set("entityIdNS", namespace)
	}
	return c.do(ctx, call{operation: "getUnifiedProfile", method: http.MethodGet, path: ProfileEntities, query: query})
}

// ExecuteQuery submits a Query Service statement.
func (c *Client) ExecuteQuery(ctx context.Context, query string) (json.RawMessage, error) {
	return c.do(ctx, call{
		operation: "executeQuery",
		method:    http.MethodPost,
		path:      QueriesPath,
		body:      models.QueryRequest{Query: query},
	})
}

// ListDestinations lists activation destinations.
func (c *Client) ListDestinations(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, call{operation: "listDestinations", method: http.MethodGet, path: DestinationsPath})
}

// ActivateSegment activates one segment on a destination.
func (c *Client) ActivateSegment(ctx context.Context, destinationID, segmentID string) (json.RawMessage, error) {
	return c.do(ctx, call{
		operation: "activateSegment",
		method:    http.MethodPost,
		path:      DestinationsPath + "/" + url.PathEscape(destinationID) + "/activate",
		body:      models.ActivationRequest{SegmentIDs: []string{segmentID}},
	})
}

type call struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      any
	accept    string
}

// do performs one upstream request. It never retries.
func (c *Client) do(ctx context.Context, in call) (json.RawMessage, error) {
	started := time.Now()

	headers, err := c.headers.Build(ctx)
	if err != nil {
		metrics.ObserveUpstream(in.operation, metrics.OutcomeAuth, started)
		return nil, err
	}

	var reqBody io.Reader
	if in.body != nil {
		var payload []byte
		if raw, ok := in.body.(json.RawMessage); ok {
			payload = raw
		} else if payload, err = json.Marshal(in.body); err != nil {
			metrics.ObserveUpstream(in.operation, metrics.OutcomeFailure, started)
			return nil, fmt.Errorf("failed to encode %s request: %w", in.operation, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	target := c.BaseURL + in.path
	if len(in.query) > 0 {
		target += "?" + in.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, in.method, target, reqBody)
	if err != nil {
		metrics.ObserveUpstream(in.operation, metrics.OutcomeFailure, started)
		return nil, fmt.Errorf("failed to create %s request: %w", in.operation, err)
	}
	req.Header = headers
	if in.accept != "" {
		req.Header.Set("Accept", in.accept)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(in.operation, metrics.OutcomeNetwork, started)
		slog.Error("aep request failed", "operation", in.operation, "method", in.method, "path", in.path, "error", err)
		return nil, &NetworkError{Operation: in.operation, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveUpstream(in.operation, metrics.OutcomeNetwork, started)
		return nil, &NetworkError{Operation: in.operation, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream(in.operation, metrics.OutcomeUpstream, started)
		slog.Warn("aep returned an error status", "operation", in.operation, "status", resp.StatusCode)
		return nil, &UpstreamError{Operation: in.operation, Status: resp.StatusCode, Body: data}
	}

	metrics.ObserveUpstream(in.operation, metrics.OutcomeSuccess, started)
	slog.Debug("aep request completed", "operation", in.operation, "status", resp.StatusCode, "latency", time.Since(started))
	return relayBody(data), nil
}

// relayBody returns the upstream body as JSON. Empty bodies become null and
// non-JSON bodies are relayed as a JSON string.
func relayBody(data []byte) json.RawMessage {
	if len(bytes.TrimSpace(data)) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(data) {
		return json.RawMessage(data)
	}
	quoted, _ := json.Marshal(string(data))
	return quoted
}
