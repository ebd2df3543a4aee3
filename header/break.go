package header

// Break is the line break that separates header fields and ends the header.
type Break string

// Line breaks seen in the wild. Pick CRLF when in doubt; it is what HTTP and
// MIME put on the wire.
const (
	Meh  Break = ""         // let the header decide
	CRLF Break = "\x0d\x0a" // \r\n - network line break
	LF   Break = "\x0a"     // \n - Unix line break
	CR   Break = "\x0d"     // \r - old Mac line break
	LFCR Break = "\x0a\x0d" // \n\r - rare, but it happens
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}
