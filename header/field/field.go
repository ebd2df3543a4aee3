package field

import (
	"bytes"
)

// Field is a single header field. Every Field carries the logical name and
// body in the embedded Base. When the field came off the wire it also keeps
// the original bytes in Raw so that an unmodified field is written back out
// exactly as it was read.
//
// The Name() and Body() methods always surface Base. The String() and Bytes()
// methods prefer Raw and fall back to Base. SetName() and SetBody() clear Raw.
type Field struct {
	Base
	*Raw
}

// New constructs a new field with no original value.
func New(name, body string) *Field {
	return &Field{Base{name, body}, nil}
}

// Clone returns a copy of the field. The Raw bytes are shared as Raw is
// immutable.
func (f *Field) Clone() *Field {
	return &Field{f.Base, f.Raw}
}

// String returns the Raw.String() if Raw is not nil. It returns the
// Base.String() otherwise.
func (f *Field) String() string {
	if f.Raw != nil {
		return f.Raw.String()
	}
	return f.Base.String()
}

// Bytes returns the Raw.Bytes() if Raw is not nil. It returns the Base.Bytes()
// otherwise.
func (f *Field) Bytes() []byte {
	if f.Raw != nil {
		return f.Raw.Bytes()
	}
	return f.Base.Bytes()
}

// Name returns the Base.Name().
func (f *Field) Name() string {
	return f.Base.Name()
}

// Body returns the Base.Body().
func (f *Field) Body() string {
	return f.Base.Body()
}

// SetName sets the name of the field and drops Raw.
func (f *Field) SetName(n string) {
	f.Raw = nil
	f.Base.SetName(n)
}

// SetBody sets the body of the field and drops Raw.
func (f *Field) SetBody(b string) {
	f.Raw = nil
	f.Base.SetBody(b)
}

// SetRaw replaces Raw with a new value. Base is left alone, so it is up to the
// caller to keep the two in agreement.
func (f *Field) SetRaw(o []byte) {
	ix := bytes.IndexByte(o, ':')
	if ix < 0 {
		ix = len(o)
	}
	f.Raw = &Raw{o, ix}
}
