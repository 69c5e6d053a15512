package formatter

import (
	"encoding/json"
)

type responseBuilder struct{}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

// NewResponseBuilder creates a new response builder for route payloads
func NewResponseBuilder() *responseBuilder {
	return newResponseBuilder()
}

// Build serializes res as "xml" or, for any other format, JSON.
func (rb *responseBuilder) Build(res *RouteResponse, format string) []byte {
	if format == "xml" {
		return rb.BuildXML(res)
	}
	return rb.BuildJSON(res)
}

// BuildJSON serializes a route response to JSON
func (rb *responseBuilder) BuildJSON(res *RouteResponse) []byte {
	b, _ := json.Marshal(res)
	return b
}

// BuildErrorJSON serializes an error payload to JSON
func (rb *responseBuilder) BuildErrorJSON(res *ErrorResponse) []byte {
	b, _ := json.Marshal(res)
	return b
}
