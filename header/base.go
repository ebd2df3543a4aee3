package header

import (
	"errors"
	"io"
	"strings"

	"github.com/zostay/go-httpheader/header/field"
)

// ErrIndexOutOfRange is returned when an attempt is made to access a header
// field index that is too large or too small.
var ErrIndexOutOfRange = errors.New("header field index is out of range")

// Base is the low-level storage for a header: an ordered list of fields, the
// line break to write them with, and the folding to apply to fields that have
// been changed since they were read. The zero value is an empty header.
type Base struct {
	lbr    Break
	vf     *field.FoldEncoding
	fields []*field.Field
}

func (h *Base) initBase() {
	if h.lbr == Meh {
		h.lbr = CRLF
	}
	if h.fields == nil {
		h.fields = make([]*field.Field, 0, 10)
	}
}

// Clone returns a deep copy of the header.
func (h *Base) Clone() *Base {
	fs := make([]*field.Field, len(h.fields))
	for i, f := range h.fields {
		fs[i] = f.Clone()
	}

	return &Base{
		lbr:    h.lbr,
		vf:     h.vf,
		fields: fs,
	}
}

// FoldEncoding returns the folding used when writing the header. It is
// field.DoNotFoldEncoding unless set otherwise, since HTTP senders must not
// fold.
func (h *Base) FoldEncoding() *field.FoldEncoding {
	if h.vf == nil {
		return field.DoNotFoldEncoding
	}
	return h.vf
}

// SetFoldEncoding changes the folding used when writing the header.
func (h *Base) SetFoldEncoding(vf *field.FoldEncoding) {
	h.vf = vf
}

// Break returns the line break used to separate header fields and terminate
// the header. It is CRLF unless set otherwise.
func (h *Base) Break() Break {
	if h.lbr == Meh {
		return CRLF
	}
	return h.lbr
}

// SetBreak changes the line break used with this header.
func (h *Base) SetBreak(lbr Break) {
	h.lbr = lbr
}

// Len returns the number of fields in the header.
func (h *Base) Len() int {
	return len(h.fields)
}

// GetField returns the nth field or nil if n is out of range.
func (h *Base) GetField(n int) *field.Field {
	if n < 0 || n >= len(h.fields) {
		return nil
	}
	return h.fields[n]
}

// GetFieldNamed returns the nth (0-indexed) field with the given name, ignoring
// case, or nil if there is no such field.
func (h *Base) GetFieldNamed(name string, n int) *field.Field {
	for _, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			if n == 0 {
				return f
			}
			n--
		}
	}
	return nil
}

// GetAllFieldsNamed returns all the fields with the given name, ignoring case.
func (h *Base) GetAllFieldsNamed(name string) []*field.Field {
	var fs []*field.Field
	for _, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			fs = append(fs, f)
		}
	}
	return fs
}

// GetIndexesNamed returns the indexes of the fields with the given name,
// ignoring case.
func (h *Base) GetIndexesNamed(name string) []int {
	var is []int
	for i, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			is = append(is, i)
		}
	}
	return is
}

// ListFields returns all the fields in the header. The slice is a copy, the
// fields are not.
func (h *Base) ListFields() []*field.Field {
	fs := make([]*field.Field, len(h.fields))
	copy(fs, h.fields)
	return fs
}

// InsertBeforeField inserts a new field with the given name and body before
// the nth field. An n past the end appends and a negative n prepends.
func (h *Base) InsertBeforeField(n int, name, body string) {
	h.initBase()

	if n < 0 {
		n = 0
	}
	if n > len(h.fields) {
		n = len(h.fields)
	}

	h.fields = append(h.fields, nil)
	copy(h.fields[n+1:], h.fields[n:])
	h.fields[n] = field.New(name, body)
}

// ClearFields removes all fields from the header.
func (h *Base) ClearFields() {
	h.initBase()
	h.fields = h.fields[:0]
}

// DeleteField removes the nth field from the header. It returns
// ErrIndexOutOfRange if there is no such field.
func (h *Base) DeleteField(n int) error {
	if n < 0 || n >= len(h.fields) {
		return ErrIndexOutOfRange
	}

	copy(h.fields[n:], h.fields[n+1:])
	h.fields[len(h.fields)-1] = nil
	h.fields = h.fields[:len(h.fields)-1]

	return nil
}

// WriteTo writes each field followed by the line break and then one more
// line break to end the header. Fields are passed through the FoldEncoding, so
// a field still holding its original bytes comes out as it went in when the
// header does not fold. An empty header writes nothing.
func (h *Base) WriteTo(w io.Writer) (int64, error) {
	if len(h.fields) == 0 {
		return 0, nil
	}

	lb := h.Break().Bytes()
	vf := h.FoldEncoding()

	total := int64(0)
	for _, f := range h.fields {
		n, err := vf.Fold(w, f.Bytes(), lb)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err := w.Write(lb)
	total += int64(n)
	return total, err
}

// Bytes returns the header as it would be written by WriteTo.
func (h *Base) Bytes() []byte {
	var buf strings.Builder
	_, _ = h.WriteTo(&buf)
	return []byte(buf.String())
}

// String returns the header as it would be written by WriteTo.
func (h *Base) String() string {
	var buf strings.Builder
	_, _ = h.WriteTo(&buf)
	return buf.String()
}
