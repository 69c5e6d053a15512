// Package formatter provides response wrapping and serialization for route payloads.
//
// This package is organized into:
// - wrapper.go: Response wrapping (timestamps, producer, stepper view, errors)
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
//
// XML is written by hand so indoor map URLs are escaped exactly once and the
// element order stays stable for embedded web views.
package formatter
