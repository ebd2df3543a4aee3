package param

import (
	"mime"
	"sort"
	"strings"
)

// Well-known parameter names.
const (
	Charset  = "charset"  // Content-Type
	Boundary = "boundary" // Content-Type, multipart only
	Filename = "filename" // Content-Disposition
)

// Value is a parsed parameterized header body. A Value is immutable; use
// Modify to derive a changed copy.
type Value struct {
	v  string
	ps map[string]string
}

// Parse parses a header body into a Value. Media type and parameter names are
// lowercased as done by mime.ParseMediaType.
func Parse(v string) (*Value, error) {
	mt, ps, err := mime.ParseMediaType(v)
	if err != nil {
		return nil, err
	}

	return &Value{mt, ps}, nil
}

// New creates a new Value. Any parameter maps given are merged, with later
// maps winning. The maps are copied.
func New(v string, pss ...map[string]string) *Value {
	ps := map[string]string{}
	for _, m := range pss {
		for k, pv := range m {
			ps[strings.ToLower(k)] = pv
		}
	}
	return &Value{v, ps}
}

// Modifier is a modification to apply to a Value when calling Modify.
type Modifier func(*Value)

// Change is a Modifier that replaces the primary value.
func Change(value string) Modifier {
	return func(pv *Value) {
		pv.v = value
	}
}

// Set is a Modifier that sets the named parameter.
func Set(name, value string) Modifier {
	return func(pv *Value) {
		pv.ps[strings.ToLower(name)] = value
	}
}

// Delete is a Modifier that removes the named parameter.
func Delete(name string) Modifier {
	return func(pv *Value) {
		delete(pv.ps, strings.ToLower(name))
	}
}

// Modify clones pv, applies the changes in order, and returns the clone:
//
//	v, _ := param.Parse("multipart/mixed; boundary=abc123")
//	nv := param.Modify(v, param.Change("multipart/alternative"), param.Set(param.Charset, "utf-8"))
func Modify(pv *Value, changes ...Modifier) *Value {
	c := pv.Clone()
	for _, change := range changes {
		change(c)
	}
	return c
}

// Value returns the primary value, the part before the first semicolon.
func (pv *Value) Value() string {
	return pv.v
}

// MediaType is a synonym for Value.
func (pv *Value) MediaType() string {
	return pv.v
}

// Presentation is a synonym for Value, named for Content-Disposition.
func (pv *Value) Presentation() string {
	return pv.v
}

// Type returns the part of the media type before the slash, or "" when there
// is no slash.
func (pv *Value) Type() string {
	if ix := strings.IndexByte(pv.v, '/'); ix >= 0 {
		return pv.v[:ix]
	}
	return ""
}

// Subtype returns the part of the media type after the slash, or "" when
// there is no slash.
func (pv *Value) Subtype() string {
	if ix := strings.IndexByte(pv.v, '/'); ix >= 0 {
		return pv.v[ix+1:]
	}
	return ""
}

// Parameters returns a copy of the parameters.
func (pv *Value) Parameters() map[string]string {
	ps := make(map[string]string, len(pv.ps))
	for k, v := range pv.ps {
		ps[k] = v
	}
	return ps
}

// Parameter returns the value of the named parameter or "".
func (pv *Value) Parameter(k string) string {
	return pv.ps[strings.ToLower(k)]
}

// Filename returns the filename parameter.
func (pv *Value) Filename() string {
	return pv.ps[Filename]
}

// Charset returns the charset parameter.
func (pv *Value) Charset() string {
	return pv.ps[Charset]
}

// Boundary returns the boundary parameter.
func (pv *Value) Boundary() string {
	return pv.ps[Boundary]
}

// String renders the value and its parameters, sorted by name. Parameter
// values that are not tokens are quoted.
func (pv *Value) String() string {
	pks := make([]string, 0, len(pv.ps))
	for k := range pv.ps {
		pks = append(pks, k)
	}
	sort.Strings(pks)

	var buf strings.Builder
	buf.WriteString(pv.v)
	for _, k := range pks {
		buf.WriteString("; ")
		buf.WriteString(k)
		buf.WriteByte('=')
		writeParamValue(&buf, pv.ps[k])
	}

	return buf.String()
}

// Bytes returns String as a slice of bytes.
func (pv *Value) Bytes() []byte {
	return []byte(pv.String())
}

// Clone returns a deep copy of the Value.
func (pv *Value) Clone() *Value {
	return &Value{pv.v, pv.Parameters()}
}

func writeParamValue(buf *strings.Builder, v string) {
	if v != "" && strings.IndexFunc(v, isNotTokenChar) < 0 {
		buf.WriteString(v)
		return
	}

	buf.WriteByte('"')
	for _, c := range v {
		if c == '"' || c == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteRune(c)
	}
	buf.WriteByte('"')
}

// isNotTokenChar reports whether c may not appear unquoted in a parameter
// value (RFC 2045 tspecials, space, and controls).
func isNotTokenChar(c rune) bool {
	if c <= ' ' || c >= 0x7f {
		return true
	}
	return strings.ContainsRune(`()<>@,;:\"/[]?=`, c)
}
