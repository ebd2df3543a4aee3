package header

import (
	"bufio"
	"bytes"
	"errors"

	"github.com/zostay/go-httpheader/header/field"
)

// DefaultMaxHeaderLength is the default limit on the size of a header given to
// Parse.
const DefaultMaxHeaderLength = bufio.MaxScanTokenSize

// Errors returned by Parse and Split.
var (
	// ErrLargeHeader is returned by Parse when the header is longer than the
	// configured WithMaxHeaderLength (or DefaultMaxHeaderLength).
	ErrLargeHeader = errors.New("the header exceeds the maximum parse length")

	// ErrNoHeaderEnd is returned by Split when there is no blank line ending
	// the header.
	ErrNoHeaderEnd = errors.New("no blank line found at the end of the header")
)

type parser struct {
	maxHeaderLen int
	vf           *field.FoldEncoding
}

// ParseOption configures Parse.
type ParseOption func(pr *parser)

// WithFoldEncoding sets the folding the parsed header uses when writing fields
// that have been changed. The default is field.DoNotFoldEncoding.
func WithFoldEncoding(vf *field.FoldEncoding) ParseOption {
	return func(pr *parser) {
		pr.vf = vf
	}
}

// WithMaxHeaderLength sets the largest header Parse accepts. A value of zero or
// less removes the limit.
func WithMaxHeaderLength(n int) ParseOption {
	return func(pr *parser) {
		pr.maxHeaderLen = n
	}
}

// Parse turns the header block m, with fields separated by lb, into a Header.
// It assumes all of m is header; use Split first when m has a body attached.
//
// Every field keeps the bytes it was read from. The header folds with
// field.DoNotFoldEncoding unless WithFoldEncoding says otherwise, so writing
// an unchanged header reproduces m.
//
// If m starts with lines that do not look like fields, those lines are
// dropped and the header is returned along with a *field.BadStartError
// holding them. The header is usable in that case.
func Parse(m []byte, lb Break, opts ...ParseOption) (*Header, error) {
	pr := &parser{
		maxHeaderLen: DefaultMaxHeaderLength,
		vf:           field.DoNotFoldEncoding,
	}
	for _, opt := range opts {
		opt(pr)
	}

	if pr.maxHeaderLen > 0 && len(m) > pr.maxHeaderLen {
		return nil, ErrLargeHeader
	}

	// a lone blank line is an empty header
	if bytes.Equal(m, lb.Bytes()) {
		m = nil
	}

	lines, err := field.ParseLines(m, lb.Bytes())

	var badStartErr *field.BadStartError
	var finalErr error
	if errors.As(err, &badStartErr) {
		finalErr = badStartErr
	} else if err != nil {
		return nil, err
	}

	fields := make([]*field.Field, len(lines))
	for i, line := range lines {
		fields[i] = field.Parse(line, lb.Bytes())
	}

	h := &Header{
		Base: Base{
			lbr:    lb,
			vf:     pr.vf,
			fields: fields,
		},
	}

	return h, finalErr
}

var splits = [][]byte{
	[]byte("\x0d\x0a\x0d\x0a"), // \r\n\r\n
	[]byte("\x0a\x0d\x0a\x0d"), // \n\r\n\r, extremely unlikely
	[]byte("\x0a\x0a"),         // \n\n
	[]byte("\x0d\x0d"),         // \r\r
}

// Split finds the blank line that ends the header in m and returns the
// header (blank line included), the body following it, and the line break in
// use. A message starting with a line break has an empty header.
//
// If there is no blank line, all of m is returned as the head along with
// ErrNoHeaderEnd. The break is then a guess from whatever line breaks m
// contains, or CRLF when it has none.
func Split(m []byte) (head, body []byte, lb Break, err error) {
	for _, s := range splits {
		if half := s[:len(s)/2]; bytes.HasPrefix(m, half) {
			return m[:len(half)], m[len(half):], Break(half), nil
		}
	}

	pos := -1
	var crlf []byte
	for _, s := range splits {
		if ix := bytes.Index(m, s); ix > -1 && (pos < 0 || ix < pos) {
			pos = ix
			crlf = s
		}
	}

	if pos >= 0 {
		end := pos + len(crlf)
		return m[:end], m[end:], Break(crlf[:len(crlf)/2]), nil
	}

	for _, s := range splits {
		if half := s[:len(s)/2]; bytes.Contains(m, half) {
			return m, nil, Break(half), ErrNoHeaderEnd
		}
	}

	return m, nil, CRLF, ErrNoHeaderEnd
}
