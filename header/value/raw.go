package value

// Raw is a field of a kind this package does not model, or a known field whose
// body could not be parsed. Name and body are kept exactly as given.
type Raw struct {
	name string
	body string
}

// NewRaw returns a Raw value.
func NewRaw(name, body string) Raw {
	return Raw{name, body}
}

// Name returns the field name as given.
func (v Raw) Name() string { return v.name }

// Body returns the field body as given.
func (v Raw) Body() string { return v.body }

// Value returns the field body.
func (v Raw) Value() string { return v.body }

// Kind returns KindRaw.
func (Raw) Kind() Kind { return KindRaw }

// String returns the wire line.
func (v Raw) String() string { return Render(v) }

func (Raw) isValue() {}
