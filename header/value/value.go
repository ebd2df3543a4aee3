package value

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a Value.
type Kind int

// The kinds of header field known to this package.
const (
	KindRaw Kind = iota
	KindContentTransferEncoding
	KindContentType
	KindDate
	KindFrom
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindContentTransferEncoding:
		return "content-transfer-encoding"
	case KindContentType:
		return "content-type"
	case KindDate:
		return "date"
	case KindFrom:
		return "from"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Canonical names of the known header fields.
const (
	ContentTransferEncodingName = "Content-Transfer-Encoding"
	ContentTypeName             = "Content-Type"
	DateName                    = "Date"
	FromName                    = "From"
)

// Value is a typed header field. The set of implementations is closed: only
// the types in this package satisfy it. Every implementation is a comparable
// struct, so comparing two Values with == never panics, though Equal is
// usually what you want.
type Value interface {
	// Name returns the field name. Known kinds always return their canonical
	// name, whatever spelling was parsed.
	Name() string

	// Value returns the field body in wire form.
	Value() string

	// Kind returns the discriminant of the variant.
	Kind() Kind

	isValue()
}

// ParseError is returned by Parse when a field has a known name but a body
// that cannot be interpreted as that kind.
type ParseError struct {
	Name string // field name as given
	Body string // field body as given
	Err  error  // the underlying parse failure
}

// Error returns the error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse %s field body %q: %v", e.Name, e.Body, e.Err)
}

// Unwrap returns the underlying parse failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}

type kindInfo struct {
	kind  Kind
	name  string
	parse func(string) (Value, error)
}

// known is keyed by lowercase field name.
var known = map[string]kindInfo{
	"content-transfer-encoding": {
		KindContentTransferEncoding,
		ContentTransferEncodingName,
		func(body string) (Value, error) { return NewContentTransferEncoding(body), nil },
	},
	"content-type": {
		KindContentType,
		ContentTypeName,
		func(body string) (Value, error) { return ParseContentType(body) },
	},
	"date": {
		KindDate,
		DateName,
		func(body string) (Value, error) { return ParseDate(body) },
	},
	"from": {
		KindFrom,
		FromName,
		func(body string) (Value, error) { return ParseFrom(body), nil },
	},
}

// Parse builds the typed value for a field with the given name and body. The
// name is matched case-insensitively. Unknown names produce a Raw value.
//
// When the name is known but the body cannot be interpreted, Parse returns a
// Raw value holding the name and body as given, along with a *ParseError.
// Nothing from the input is lost either way.
func Parse(name, body string) (Value, error) {
	ki, isKnown := known[strings.ToLower(name)]
	if !isKnown {
		return NewRaw(name, body), nil
	}

	v, err := ki.parse(body)
	if err != nil {
		return NewRaw(name, body), &ParseError{name, body, err}
	}

	return v, nil
}

// KindOf returns the Kind that Parse would produce for the named field on
// success.
func KindOf(name string) Kind {
	if ki, isKnown := known[strings.ToLower(name)]; isKnown {
		return ki.kind
	}
	return KindRaw
}

// CanonicalName returns the canonical spelling of a known field name or name
// unchanged.
func CanonicalName(name string) string {
	if ki, isKnown := known[strings.ToLower(name)]; isKnown {
		return ki.name
	}
	return name
}

// Is reports whether v is a field with the given name, ignoring case.
func Is(v Value, name string) bool {
	return strings.EqualFold(v.Name(), name)
}

// Render returns the field as a single unfolded wire line without the line
// terminator, e.g. "Content-Transfer-Encoding: base64".
func Render(v Value) string {
	return v.Name() + ": " + v.Value()
}

// Equal reports whether a and b are the same kind of field with the same name
// (ignoring case) and the same body. Dates compare by instant.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Kind() != b.Kind() || !strings.EqualFold(a.Name(), b.Name()) {
		return false
	}

	if ad, isDate := a.(Date); isDate {
		return ad.Time().Equal(b.(Date).Time())
	}

	return a.Value() == b.Value()
}
