package value

// ContentTransferEncoding is the Content-Transfer-Encoding field. It holds the
// encoding token exactly as given. The token is opaque here: "base64",
// "BASE64", "x-custom", and "" are all acceptable, and two values are equal
// (with ==) only when their tokens are byte-for-byte identical.
type ContentTransferEncoding struct {
	encoding string
}

// NewContentTransferEncoding returns the value for the given token without
// altering it.
func NewContentTransferEncoding(encoding string) ContentTransferEncoding {
	return ContentTransferEncoding{encoding}
}

// Encoding returns the token.
func (v ContentTransferEncoding) Encoding() string {
	return v.encoding
}

// Name returns ContentTransferEncodingName.
func (ContentTransferEncoding) Name() string {
	return ContentTransferEncodingName
}

// Value returns the token. It needs no quoting or escaping on the wire.
func (v ContentTransferEncoding) Value() string {
	return v.encoding
}

// Kind returns KindContentTransferEncoding.
func (ContentTransferEncoding) Kind() Kind {
	return KindContentTransferEncoding
}

// String returns the wire line, e.g. "Content-Transfer-Encoding: base64".
func (v ContentTransferEncoding) String() string {
	return Render(v)
}

func (ContentTransferEncoding) isValue() {}
