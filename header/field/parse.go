package field

import (
	"bytes"
)

// Break is the line break used while splitting and folding fields.
type Break []byte

// BadStartError is returned when the header begins with junk text that does not
// appear to be a header. This text is preserved in the error object.
type BadStartError struct {
	BadStart []byte // the text skipped at the start of header
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "header starts with text that does not appear to be a header"
}

// Line represents the unparsed content for a complete header field line.
type Line []byte

// Lines represents the unparsed content for zero or more header field
// lines.
type Lines []Line

// ParseLines splits the given header block into field lines, keeping folded
// continuation lines attached to the field they continue. The input is
// expected to contain only the header.
//
// This is liberal in what it accepts. If the first line (or lines) of input
// start with a space or contain no colon, they are skipped and a BadStartError
// holding them is returned along with the lines that were found. After the
// first real field, any line starting with a space or tab, or lacking a colon,
// is treated as a continuation.
func ParseLines(m []byte, lb Break) (Lines, error) {
	h := make(Lines, 0, len(m)/80)
	var err *BadStartError
	for _, line := range bytes.SplitAfter(m, lb) {
		if len(line) == 0 {
			break
		}
		if line[0] == '\t' || line[0] == ' ' || !bytes.Contains(line, []byte(":")) {
			if len(h) == 0 {
				if err != nil {
					err.BadStart = append(err.BadStart, line...)
				} else {
					err = &BadStartError{line}
				}
				continue
			}

			h[len(h)-1] = append(h[len(h)-1], line...)
		} else {
			h = append(h, line)
		}
	}

	if err != nil {
		return h, err
	}
	return h, nil
}

// Parse takes a single field line, including any folded continuation lines,
// and constructs a Field from it. The name is everything before the first
// colon. The body is unfolded and trimmed of surrounding whitespace. Unless the
// field is structured (see IsStructured), any encoded-words are decoded too. If
// decoding fails, the undecoded body is kept.
func Parse(f Line, lb Break) *Field {
	rawField := bytes.TrimRight(f, string(lb))

	off := 1
	ix := bytes.IndexByte(rawField, ':')
	if ix < 0 {
		ix = len(rawField)
		off = 0
	}

	// unfolding does not depend on the fold settings
	name := string(DefaultFoldEncoding.Unfold(rawField[:ix]))
	body := string(bytes.TrimSpace(DefaultFoldEncoding.Unfold(rawField[ix+off:])))
	if !IsStructured(name) {
		if decBody, err := Decode(body); err == nil {
			body = decBody
		}
	}

	return &Field{
		Base: Base{name, body},
		Raw:  &Raw{rawField, ix},
	}
}
