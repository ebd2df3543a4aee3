package transfer

import (
	"encoding/base64"
	"io"
)

// Base64LineLength is the longest line NewBase64Encoder writes.
const Base64LineLength = 76

var base64LineBreak = []byte{'\n'}

// newlineWriter writes a line break after every `every` bytes.
type newlineWriter struct {
	every int
	acc   int
	lbr   []byte
	w     io.Writer
}

func (nw *newlineWriter) Write(b []byte) (int, error) {
	n := 0
	for len(b)+nw.acc > nw.every {
		take := nw.every - nw.acc
		ln, err := nw.w.Write(b[:take])
		n += ln
		if err != nil {
			return n, err
		}

		if _, err = nw.w.Write(nw.lbr); err != nil {
			return n, err
		}

		b = b[take:]
		nw.acc = 0
	}

	ln, err := nw.w.Write(b)
	n += ln
	nw.acc += ln

	return n, err
}

// NewBase64Encoder returns an io.WriteCloser that base64 encodes the bytes
// written to it and writes them to w in lines of Base64LineLength. The last
// line is not terminated. Close must be called to flush the final bytes; it
// does not close w.
func NewBase64Encoder(w io.Writer) io.WriteCloser {
	enc := base64.NewEncoder(base64.StdEncoding, &newlineWriter{
		every: Base64LineLength,
		lbr:   base64LineBreak,
		w:     w,
	})
	return &writer{enc, enc}
}

// NewBase64Decoder returns an io.Reader that decodes the base64 read from r.
// Line breaks in the input are ignored.
func NewBase64Decoder(r io.Reader) io.Reader {
	return base64.NewDecoder(base64.StdEncoding, r)
}
