package models

// Schema is the request payload for creating an XDM schema. It validates the
// body only; the caller's bytes are what AEP receives.
// @Description Schema is the request payload for creating an XDM schema.
type Schema struct {
	Title       string         `json:"title" binding:"required"`
	Description *string        `json:"description,omitempty" binding:"omitempty,min=1"`
	Type        string         `json:"type" binding:"required"`
	Properties  map[string]any `json:"properties" binding:"required"`
}

// SchemaRef points a dataset at the schema that describes it.
type SchemaRef struct {
	ID          string `json:"id" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// Dataset is the request payload for creating a catalog dataset.
// @Description Dataset is the request payload for creating a catalog dataset.
type Dataset struct {
	Name        string     `json:"name" binding:"required"`
	Description *string    `json:"description,omitempty" binding:"omitempty,min=1"`
	SchemaRef   *SchemaRef `json:"schemaRef" binding:"required"`
}

// SegmentExpression holds the segment rule, typically PQL.
type SegmentExpression struct {
	Type  string         `json:"type" binding:"required"`
	Value map[string]any `json:"value" binding:"required"`
}

// SegmentSchema names the XDM class the segment evaluates against.
type SegmentSchema struct {
	Name string `json:"name" binding:"required"`
}

// Segment is the request payload for creating a segment definition.
// @Description Segment is the request payload for creating a segment definition.
type Segment struct {
	Name        string             `json:"name" binding:"required"`
	Description *string            `json:"description,omitempty" binding:"omitempty,min=1"`
	Expression  *SegmentExpression `json:"expression" binding:"required"`
	Schema      *SegmentSchema     `json:"schema" binding:"required"`
}

// QueryRequest is the payload for executing a Query Service statement.
type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// ActivationRequest is the body sent upstream to activate segments on a destination.
type ActivationRequest struct {
	SegmentIDs []string `json:"segmentIds"`
}

// The types below document upstream responses, which are relayed verbatim.

// Profile is a unified profile entity.
type Profile struct {
	IdentityMap map[string]any `json:"identityMap"`
	Attributes  map[string]any `json:"attributes"`
	Segments    []string       `json:"segments"`
}

// QueryResult is the result of a Query Service statement.
type QueryResult struct {
	Rows      []any    `json:"rows"`
	Columns   []string `json:"columns"`
	TotalRows int      `json:"totalRows"`
}

// Destination is an activation destination.
type Destination struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Status         string         `json:"status"`
	ConnectionSpec map[string]any `json:"connectionSpec"`
}

// IngestResult is returned when a batch is accepted.
type IngestResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ActivationResult is returned when a segment activation is accepted.
type ActivationResult struct {
	Status string `json:"status"`
}

// ListResponse wraps the schema listing.
type ListResponse struct {
	Status string `json:"status" example:"success"`
	Data   any    `json:"data"`
}
