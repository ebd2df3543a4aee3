package value

import (
	"github.com/zostay/go-httpheader/header/param"
)

// ContentType is the Content-Type field: a media type plus parameters.
type ContentType struct {
	pv *param.Value
}

// NewContentType returns a Content-Type value. The parameter maps are copied.
func NewContentType(mediaType string, params ...map[string]string) ContentType {
	return ContentType{param.New(mediaType, params...)}
}

// NewContentTypeParam returns a Content-Type value from a copy of pv.
func NewContentTypeParam(pv *param.Value) ContentType {
	if pv == nil {
		return ContentType{}
	}
	return ContentType{pv.Clone()}
}

// ParseContentType parses a Content-Type body.
func ParseContentType(body string) (ContentType, error) {
	pv, err := param.Parse(body)
	if err != nil {
		return ContentType{}, err
	}
	return ContentType{pv}, nil
}

func (v ContentType) param() *param.Value {
	if v.pv == nil {
		return param.New("")
	}
	return v.pv
}

// Param returns a copy of the parameterized value.
func (v ContentType) Param() *param.Value { return v.param().Clone() }

// MediaType returns the media type, e.g. "text/plain".
func (v ContentType) MediaType() string { return v.param().MediaType() }

// Type returns the top-level type, e.g. "text".
func (v ContentType) Type() string { return v.param().Type() }

// Subtype returns the subtype, e.g. "plain".
func (v ContentType) Subtype() string { return v.param().Subtype() }

// Charset returns the charset parameter.
func (v ContentType) Charset() string { return v.param().Charset() }

// Boundary returns the boundary parameter.
func (v ContentType) Boundary() string { return v.param().Boundary() }

// Parameter returns the named parameter.
func (v ContentType) Parameter(name string) string { return v.param().Parameter(name) }

// Parameters returns a copy of all parameters.
func (v ContentType) Parameters() map[string]string { return v.param().Parameters() }

// Name returns ContentTypeName.
func (ContentType) Name() string { return ContentTypeName }

// Value returns the media type and parameters in wire form.
func (v ContentType) Value() string { return v.param().String() }

// Kind returns KindContentType.
func (ContentType) Kind() Kind { return KindContentType }

// String returns the wire line.
func (v ContentType) String() string { return Render(v) }

func (ContentType) isValue() {}
