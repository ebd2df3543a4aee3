// Package policy checks header fields against the standards that the typed
// values in package value deliberately do not enforce. The value types accept
// any token so that nothing read off the wire is lost; this package is where
// a caller decides whether what was read is acceptable.
package policy
