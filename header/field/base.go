package field

import (
	"fmt"
)

// Base holds the logical name and body of a header field. The body is the
// unfolded, decoded value that typed values are built from.
type Base struct {
	name string
	body string
}

// Name returns the name of the header field.
func (f *Base) Name() string {
	return f.name
}

// SetName updates the name of the header field.
func (f *Base) SetName(name string) {
	f.name = name
}

// Body returns the value of the header field as a string.
func (f *Base) Body() string {
	return f.body
}

// SetBody updates the body of the header field.
func (f *Base) SetBody(body string) {
	f.body = body
}

// String returns the complete header field as a string. Unstructured bodies
// containing characters that cannot travel in a header, or anything that looks
// like an encoded-word, are emitted as encoded-words. Structured bodies (see
// IsStructured) are written as they are.
func (f *Base) String() string {
	if IsStructured(f.name) {
		return fmt.Sprintf("%s: %s", f.name, f.body)
	}
	return fmt.Sprintf("%s: %s", f.name, Encode(f.body))
}

// Bytes returns the complete header field as a slice of bytes.
func (f *Base) Bytes() []byte {
	return []byte(f.String())
}
