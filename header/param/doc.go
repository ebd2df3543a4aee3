// Package param provides immutable parameterized header values, the shape used
// by Content-Type and Content-Disposition, along with helpers for breaking
// down the media type.
package param
