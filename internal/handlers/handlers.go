package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"aep-proxy/internal/aep"
	"aep-proxy/internal/models"
)

// Gateway is the set of AEP operations the API exposes. *aep.Client implements it.
type Gateway interface {
	ListSchemas(ctx context.Context, params aep.ListParams) (json.RawMessage, error)
	CreateSchema(ctx context.Context, schema json.RawMessage) (json.RawMessage, error)
	ListDatasets(ctx context.Context, params aep.ListParams) (json.RawMessage, error)
	CreateDataset(ctx context.Context, dataset json.RawMessage) (json.RawMessage, error)
	ListSegments(ctx context.Context, params aep.ListParams) (json.RawMessage, error)
	CreateSegment(ctx context.Context, segment json.RawMessage) (json.RawMessage, error)
	IngestData(ctx context.Context, datasetID string, payload json.RawMessage) (json.RawMessage, error)
	GetUnifiedProfile(ctx context.Context, identityValue, namespace string) (json.RawMessage, error)
	ExecuteQuery(ctx context.Context, query string) (json.RawMessage, error)
	ListDestinations(ctx context.Context) (json.RawMessage, error)
	ActivateSegment(ctx context.Context, destinationID, segmentID string) (json.RawMessage, error)
}

var _ Gateway = (*aep.Client)(nil)

// API provides the /api/aep handlers.
type API struct {
	gateway Gateway
}

// NewAPI creates a new API handler backed by the given gateway.
func NewAPI(gateway Gateway) *API {
	return &API{gateway: gateway}
}

// RegisterRoutes registers the AEP proxy routes on the given router.
func (a *API) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/api/aep")
	{
		group.GET("/schemas", a.ListSchemas)
		group.POST("/schemas", a.CreateSchema)

		group.GET("/datasets", a.ListDatasets)
		group.POST("/datasets", a.CreateDataset)

		group.GET("/segments", a.ListSegments)
		group.POST("/segments", a.CreateSegment)

		group.POST("/ingest/:datasetId", a.IngestData)

		group.GET("/profiles/:identityValue", a.GetUnifiedProfile)

		group.POST("/query", a.ExecuteQuery)

		group.GET("/destinations", a.ListDestinations)
		group.POST("/destinations/:destinationId/activate/:segmentId", a.ActivateSegment)
	}
}

// ListSchemas godoc
// @Summary List schemas
// @Description List XDM schemas from the AEP schema registry. The upstream body is returned under data.
// @Tags schemas
// @Produce  json
// @Param   limit   query  int  false  "Maximum number of results"
// @Param   offset  query  int  false  "Number of results to skip"
// @Success 200 {object} models.ListResponse "Upstream schema listing wrapped in a success envelope"
// @Failure 400 {object} models.APIError "Invalid pagination parameter"
// @Failure 503 {object} models.APIError "AEP unreachable"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /schemas [get]
func (a *API) ListSchemas(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}
	schemas, err := a.gateway.ListSchemas(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}
	RespondWithSuccess(c, http.StatusOK, models.ListResponse{Status: "success", Data: schemas})
}

// CreateSchema godoc
// @Summary Create a schema
// @Description Create an XDM schema. title, type and properties are required.
// @Tags schemas
// @Accept  json
// @Produce  json
// @Param   schema  body  models.Schema  true  "Schema to create"
// @Success 201 {object} object "Schema as created by AEP"
// @Failure 400 {object} models.APIError "Validation error"
// @Failure 503 {object} models.APIError "AEP unreachable"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /schemas [post]
func (a *API) CreateSchema(c *gin.Context) {
	body, ok := bindBody(c, &models.Schema{})
	if !ok {
		return
	}
	created, err := a.gateway.CreateSchema(c.Request.Context(), body)
	if err != nil {
		_ = c.Error(err)
		return
	}
	RespondWithSuccess(c, http.StatusCreated, created)
}

// ListDatasets godoc
// @Summary List datasets
// @Description List catalog datasets. The upstream body is relayed verbatim.
// @Tags datasets
// @Produce  json
// @Param   limit   query  int  false  "Maximum number of results"
// @Param   offset  query  int  false  "Number of results to skip"
// @Success 200 {object} object "Upstream dataset listing"
// @Failure 400 {object} models.APIError "Invalid pagination parameter"
// @Failure 503 {object} models.APIError "AEP unreachable"
// @Router /datasets [get]
func (a *API) ListDatasets(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}
	datasets, err := a.gateway.ListDatasets(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}
	RespondWithSuccess(c, http.StatusOK, datasets)
}

// CreateDataset godoc
// @Summary Create a dataset
// @Description Create a catalog dataset. name and schemaRef{id,contentType} are required.
// @Tags datasets
// @Accept  json
// @Produce  json
// @Param   dataset  body  models.Dataset  true  "Dataset to create"
// @Success 201 {object} object "Dataset as created by AEP"
// @Failure 400 {object} models.APIError "Validation error"
// @Failure 503 {object} models.APIError "AEP unreachable"
// @Router /datasets [post]
func (a *API) CreateDataset(c *gin.Context) {
	body, ok := bindBody(c, &models.Dataset{})
	if !ok {
		return
	}
	created, err := a.gateway.CreateDataset(c.Request.Context(), body)
	if err != nil {
		_ = c.Error(err)
		return
	}
	RespondWithSuccess(c, http.StatusCreated, created)
}

// ListSegments godoc
// @Summary List segments
// @Description List segment definitions. The upstream body is relayed verbatim.
// @Tags segments
// @Produce  json
// @Param   limit   query  int  false  "Maximum number of results"
// @Param   offset  query  int  false  "Number of results to skip"
// @Success 200 {object} object "Upstream segment listing"
// @Failure 400 {object} models.APIError "Invalid pagination parameter"
// @Failure 503 {object} models.APIError "AEP unreachable"
// @Router /segments [get]
func (a *API) ListSegments(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}
	segments, err := a.gateway.ListSegments(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}
	RespondWithSuccess(c, http.StatusOK, segments)
}

// CreateSegment godoc
// @Summary Create a segment
// @Description Create a segment definition. name, expression{type,value} and schema{name} are required.
// @Tags segments
// @Accept  json
// @Produce  json
// @Param   segment  body  models.Segment  true  "Segment to create"
// @Success 201 {object} object "Segment as created by AEP"
// @Failure 400 {object} models.APIError "Validation error"
// @Failure 503 {object} models.APIError "AEP unreachable"
// @Router /segments [post]
func (a *API) CreateSegment(c *gin.Context) {
	body, ok := bindBody(c, &models.Segment{})
	if !ok {
		return
	}
	created, err := a.gateway.CreateSegment(c.Request.Context(), body)
	if err != nil {
		_ = c.Error(err)
		return
	}
	RespondWithSuccess(c, http.StatusCreated, created)
}

// IngestData godoc
// @Summary Ingest data into a dataset
// @Description Forward an arbitrary JSON payload to the batch ingestion API for a dataset.
// @Tags ingestion
// @Accept  json
// @Produce  json
// @Param   datasetId  path  string  true  "Dataset ID"
// @Param   payload    body  object  false  "Ingestion payload, {} when omitted"
// @Success 201 {object} models.IngestResult "Batch accepted"
// @Failure 400 {object} models.APIError "Body is not JSON"
// @Failure 503 {object} models.APIError "AEP unreachable"
// @Router /ingest/{datasetId} [post]
func (a *API) IngestData(c *gin.Context) {
	datasetID := c.Param("datasetId")
	payload, err := c.GetRawData()
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorBadRequest, "Failed to read request body")
		return
	}
	// An empty body is sent as an empty object.
	if len(bytes.TrimSpace(payload)) == 0 {
		payload = []byte("{}")
	}
	if !json.Valid(payload) {
		RespondWithError(c, http.StatusBadRequest, models.ErrorBadRequest, "Request body must be valid JSON")
		return
	}

	result, err := a.gateway.IngestData(c.Request.Context(), datasetID, json.RawMessage(payload))
	if err != nil {
		_ = c.Error(err)
		return
	}
	RespondWithSuccess(c, http.StatusCreated, result)
}

// GetUnifiedProfile godoc
// @Summary Get a unified profile
// @Description Look up a unified profile by identity value and optional identity namespace.
// @Tags profiles
// @Produce  json
// @Param   identityValue  path   string  true   "Identity value"
// @Param   namespace      query  string  false  "Identity namespace code, e.g. email"
// @Success 200 {object} models.Profile "Profile as returned by AEP"
// @Failure 404 {object} models.APIError "Upstream not found"
// @Failure 503 {object} models.APIError "AEP unreachable"
// @Router /profiles/{identityValue} [get]
func (a *API) GetUnifiedProfile(c *gin.Context) {
	identityValue := c.Param("identityValue")
	namespace := c.Query("namespace")

	profile, err := a.gateway.GetUnifiedProfile(c.Request.Context(), identityValue, namespace)
	if err != nil {
		_ = c.Error(err)
		return
	}
	RespondWithSuccess(c, http.StatusOK, profile)
}

// ExecuteQuery godoc
// @Summary Execute a query
// @Description Submit a Query Service statement.
// @Tags query
// @Accept  json
// @Produce  json
// @Param   query  body  models.QueryRequest  true  "Statement to execute"
// @Success 200 {object} models.QueryResult "Query result as returned by AEP"
// @Failure 400 {object} models.APIError "Validation error"
// @Failure 503 {object} models.APIError "AEP unreachable"
// @Router /query [post]
func (a *API) ExecuteQuery(c *gin.Context) {
	var req models.QueryRequest
	if _, ok := bindBody(c, &req); !ok {
		return
	}
	result, err := a.gateway.ExecuteQuery(c.Request.Context(), req.Query)
	if err != nil {
		_ = c.Error(err)
		return
	}
	RespondWithSuccess(c, http.StatusOK, result)
}

// ListDestinations godoc
// @Summary List destinations
// @Description List activation destinations.
// @Tags destinations
// @Produce  json
// @Success 200 {array} models.Destination "Destinations as returned by AEP"
// @Failure 503 {object} models.APIError "AEP unreachable"
// @Router /destinations [get]
func (a *API) ListDestinations(c *gin.Context) {
	destinations, err := a.gateway.ListDestinations(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	RespondWithSuccess(c, http.StatusOK, destinations)
}

// ActivateSegment godoc
// @Summary Activate a segment on a destination
// @Tags destinations
// @Produce  json
// @Param   destinationId  path  string  true  "Destination ID"
// @Param   segmentId      path  string  true  "Segment ID"
// @Success 200 {object} models.ActivationResult "Activation accepted"
// @Failure 503 {object} models.APIError "AEP unreachable"
// @Router /destinations/{destinationId}/activate/{segmentId} [post]
func (a *API) ActivateSegment(c *gin.Context) {
	result, err := a.gateway.ActivateSegment(c.Request.Context(), c.Param("destinationId"), c.Param("segmentId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	RespondWithSuccess(c, http.StatusOK, result)
}

// bindBody validates a JSON body against obj's binding tags and returns the
// body exactly as received. On failure it writes a 400 and returns false.
func bindBody(c *gin.Context, obj any) (json.RawMessage, bool) {
	if err := c.ShouldBindBodyWith(obj, binding.JSON); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorBadRequest, "Invalid request payload: "+err.Error())
		return nil, false
	}
	raw, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		RespondWithError(c, http.StatusBadRequest, models.ErrorBadRequest, "Invalid request payload: empty body")
		return nil, false
	}
	return json.RawMessage(raw.([]byte)), true
}

// bindListParams reads the optional limit and offset query parameters.
func bindListParams(c *gin.Context) (aep.ListParams, bool) {
	var params aep.ListParams
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"limit", &params.Limit},
		{"offset", &params.Offset},
	} {
		raw, present := c.GetQuery(p.name)
		if !present || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			RespondWithError(c, http.StatusBadRequest, models.ErrorBadRequest, "Invalid "+p.name+" parameter: must be a non-negative integer")
			return params, false
		}
		*p.dst = n
	}
	return params, true
}
