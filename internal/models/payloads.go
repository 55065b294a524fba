package models

// These structs define the JSON bodies returned by the HTTP boundary.

// ErrorDetail identifies a domain error by type and human-readable message.
type ErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every 4xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ServerErrorResponse is the opaque body of every 5xx response. It never
// carries internal detail.
type ServerErrorResponse struct {
	Message string `json:"message"`
}
