// Package utils provides internal utility functions for the wayfinder.
// This package is not intended to be imported by external code.
//
// It contains time formatting helpers for response payloads.
package utils
