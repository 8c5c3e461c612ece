package models

// APIError is the JSON body of every error response.
// @Description APIError is the JSON body of every error response. For upstream failures
// @Description Error carries the upstream body as received and Status its HTTP status.
type APIError struct {
	Error   any    `json:"error"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status,omitempty"`
}

// Fixed error labels.
const (
	ErrorBadRequest         = "Bad Request"
	ErrorServiceUnavailable = "Service Unavailable"
	ErrorInternalServer     = "Internal Server Error"
	ErrorNotFound           = "Not Found"
	ErrorUpstreamDefault    = "Adobe API Error"

	MessageUpstreamUnreachable = "Could not connect to Adobe API"
)
