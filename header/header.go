package header

import (
	"errors"

	"github.com/zostay/go-httpheader/header/value"
)

// Errors returned by the Header getters.
var (
	// ErrNoSuchField is returned when the named field is not in the header.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields is returned when a single field was asked for but the
	// header has more than one field with that name.
	ErrManyFields = errors.New("many header fields found")

	// ErrWrongKind is returned by Lookup when the field found cannot be
	// returned as the requested type.
	ErrWrongKind = errors.New("header field is not of the requested kind")
)

// Names of commonly used header fields. The typed ones are spelled the way
// package value renders them.
const (
	ContentTransferEncoding = value.ContentTransferEncodingName
	ContentType             = value.ContentTypeName
	Date                    = value.DateName
	From                    = value.FromName
	Subject                 = "Subject"
)

// Header wraps a Base with string and typed getters and setters.
//
// Getters that fetch a single field return ErrNoSuchField when the field is
// missing and ErrManyFields, along with the first field's value, when there is
// more than one. Typed values are derived with value.Parse every time they are
// requested; the header holds no other state than its fields.
type Header struct {
	Base
}

// New returns an empty header that will be written with the given line break.
func New(lb Break) *Header {
	return &Header{Base: Base{lbr: lb}}
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	return &Header{Base: *h.Base.Clone()}
}

// Get returns the body of the named field.
func (h *Header) Get(name string) (string, error) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return "", ErrNoSuchField
	}

	b := h.GetField(ixs[0]).Body()
	if len(ixs) > 1 {
		return b, ErrManyFields
	}

	return b, nil
}

// GetAll returns the bodies of all the fields with the given name in header
// order, or ErrNoSuchField when there are none.
func (h *Header) GetAll(name string) ([]string, error) {
	fs := h.GetAllFieldsNamed(name)
	if len(fs) == 0 {
		return nil, ErrNoSuchField
	}

	bs := make([]string, len(fs))
	for i, f := range fs {
		bs[i] = f.Body()
	}

	return bs, nil
}

// Set replaces all the fields with the given name with a single field. The
// first existing field is changed in place and the rest deleted. If there is
// no such field, it is appended.
func (h *Header) Set(name, body string) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		h.InsertBeforeField(h.Len(), name, body)
		return
	}

	for i := len(ixs) - 1; i > 0; i-- {
		_ = h.DeleteField(ixs[i])
	}

	f := h.GetField(ixs[0])
	f.SetName(name)
	f.SetBody(body)
}

// SetAll makes the named field appear exactly len(bodies) times. Existing
// fields are changed in place, extra bodies are appended to the end, and
// leftover fields are deleted.
func (h *Header) SetAll(name string, bodies ...string) {
	ixs := h.GetIndexesNamed(name)

	for i, b := range bodies {
		if i < len(ixs) {
			h.GetField(ixs[i]).SetBody(b)
			continue
		}

		h.InsertBeforeField(h.Len(), name, b)
	}

	for i := len(ixs) - 1; i >= len(bodies); i-- {
		_ = h.DeleteField(ixs[i])
	}
}

// GetValue returns the typed value of the named field.
//
// If the field's body cannot be interpreted as its kind, the value is a
// value.Raw and the error is a *value.ParseError.
func (h *Header) GetValue(name string) (value.Value, error) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return nil, ErrNoSuchField
	}

	f := h.GetField(ixs[0])
	v, err := value.Parse(f.Name(), f.Body())
	if len(ixs) > 1 {
		return v, ErrManyFields
	}

	return v, err
}

// GetAllValues returns the typed values of all the fields with the given name.
// Every field produces a value. The error is the first *value.ParseError met,
// if any, or ErrNoSuchField when there are no such fields.
func (h *Header) GetAllValues(name string) ([]value.Value, error) {
	fs := h.GetAllFieldsNamed(name)
	if len(fs) == 0 {
		return nil, ErrNoSuchField
	}

	var firstErr error
	vs := make([]value.Value, len(fs))
	for i, f := range fs {
		v, err := value.Parse(f.Name(), f.Body())
		if err != nil && firstErr == nil {
			firstErr = err
		}
		vs[i] = v
	}

	return vs, firstErr
}

// Values returns the typed value of every field in header order. Fields that
// cannot be interpreted come back as value.Raw.
func (h *Header) Values() []value.Value {
	vs := make([]value.Value, len(h.fields))
	for i, f := range h.fields {
		vs[i], _ = value.Parse(f.Name(), f.Body())
	}
	return vs
}

// SetValue replaces all fields named v.Name() with one field holding v.
func (h *Header) SetValue(v value.Value) {
	h.Set(v.Name(), v.Value())
}

// AddValue appends a field holding v to the end of the header.
func (h *Header) AddValue(v value.Value) {
	h.InsertBeforeField(h.Len(), v.Name(), v.Value())
}

// Lookup returns the single field of T's kind as a T. It returns
// ErrNoSuchField or ErrManyFields as the other getters do, the
// *value.ParseError if the field does not parse, and ErrWrongKind when T is
// value.Raw or value.Value, neither of which names a field.
//
//	cte, err := header.Lookup[value.ContentTransferEncoding](h)
func Lookup[T value.Value](h *Header) (T, error) {
	var zero T
	if any(zero) == nil || zero.Kind() == value.KindRaw {
		return zero, ErrWrongKind
	}

	v, err := h.GetValue(zero.Name())
	if v == nil {
		return zero, err
	}

	t, isT := v.(T)
	if !isT {
		if err == nil {
			err = ErrWrongKind
		}
		return zero, err
	}

	return t, err
}

// GetTransferEncoding returns the Content-Transfer-Encoding field.
func (h *Header) GetTransferEncoding() (value.ContentTransferEncoding, error) {
	return Lookup[value.ContentTransferEncoding](h)
}

// SetTransferEncoding replaces the Content-Transfer-Encoding field.
func (h *Header) SetTransferEncoding(v value.ContentTransferEncoding) {
	h.SetValue(v)
}

// GetContentType returns the Content-Type field.
func (h *Header) GetContentType() (value.ContentType, error) {
	return Lookup[value.ContentType](h)
}

// SetContentType replaces the Content-Type field.
func (h *Header) SetContentType(v value.ContentType) {
	h.SetValue(v)
}

// GetMediaType returns the media type of the Content-Type field.
func (h *Header) GetMediaType() (string, error) {
	ct, err := h.GetContentType()
	return ct.MediaType(), err
}

// GetCharset returns the charset parameter of the Content-Type field.
func (h *Header) GetCharset() (string, error) {
	ct, err := h.GetContentType()
	return ct.Charset(), err
}

// GetBoundary returns the boundary parameter of the Content-Type field.
func (h *Header) GetBoundary() (string, error) {
	ct, err := h.GetContentType()
	return ct.Boundary(), err
}

// GetDate returns the Date field.
func (h *Header) GetDate() (value.Date, error) {
	return Lookup[value.Date](h)
}

// SetDate replaces the Date field.
func (h *Header) SetDate(v value.Date) {
	h.SetValue(v)
}

// GetFrom returns the From field.
func (h *Header) GetFrom() (value.From, error) {
	return Lookup[value.From](h)
}

// SetFrom replaces the From field.
func (h *Header) SetFrom(v value.From) {
	h.SetValue(v)
}
