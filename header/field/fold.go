package field

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

const (
	DefaultFoldIndent = " " // indent placed before continuation lines lacking one
	DefaultFoldLength = 78  // we prefer header lines no longer than this

	DoNotFold = -1 // write every field on a single line
)

var (
	// DefaultFoldEncoding folds at whitespace once a line passes
	// DefaultFoldLength.
	DefaultFoldEncoding = &FoldEncoding{DefaultFoldIndent, DefaultFoldLength}

	// DoNotFoldEncoding is a FoldEncoding that doesn't perform folding. HTTP
	// (RFC 9112) forbids generating folded fields, so this is what a header
	// uses unless told otherwise.
	DoNotFoldEncoding = &FoldEncoding{DefaultFoldIndent, DoNotFold}
)

var (
	// ErrFoldIndentSpace is returned by NewFoldEncoding when a non-space/non-tab
	// character is put in the foldIndent setting.
	ErrFoldIndentSpace = errors.New("fold indent may only contains spaces and tabs")

	// ErrFoldIndentTooShort is returned by NewFoldEncoding when the foldIndent
	// is empty.
	ErrFoldIndentTooShort = errors.New("fold indent must contain at least one space or tab")

	// ErrFoldIndentTooLong is returned by NewFoldEncoding when the foldIndent
	// setting is equal to or longer than the foldLength.
	ErrFoldIndentTooLong = errors.New("fold indent must be shorter than the fold length")

	// ErrFoldLengthTooShort is returned by NewFoldEncoding when the foldLength
	// is neither positive nor DoNotFold.
	ErrFoldLengthTooShort = errors.New("fold length must be positive or DoNotFold")
)

// FoldEncoding provides the tooling for folding header lines on output.
//
// Folding only ever inserts a line break in front of whitespace that is
// already in the field. It never splits a token, never touches the field name,
// and never forces a break, so unfolding restores the body exactly. A token
// longer than the fold length is written on an over-long line.
type FoldEncoding struct {
	foldIndent string
	foldLength int
}

// NewFoldEncoding creates a new FoldEncoding with the given settings. The
// foldIndent must contain one or more space or tab characters and be shorter
// than foldLength. Pass DoNotFold as foldLength to disable folding.
func NewFoldEncoding(foldIndent string, foldLength int) (*FoldEncoding, error) {
	if ix := strings.IndexFunc(foldIndent, func(c rune) bool { return !isSpace(c) }); ix >= 0 {
		return nil, ErrFoldIndentSpace
	}

	if len(foldIndent) < 1 {
		return nil, ErrFoldIndentTooShort
	}

	if foldLength != DoNotFold {
		if foldLength < 1 {
			return nil, ErrFoldLengthTooShort
		}

		if len(foldIndent) >= foldLength {
			return nil, ErrFoldIndentTooLong
		}
	}

	return &FoldEncoding{foldIndent, foldLength}, nil
}

// Unfold removes the line breaks from a folded field, leaving the folding
// whitespace in place.
func (vf *FoldEncoding) Unfold(f []byte) []byte {
	uf := make([]byte, 0, len(f))
	for _, b := range f {
		if !isCRLF(rune(b)) {
			uf = append(uf, b)
		}
	}
	return uf
}

func isCRLF(c rune) bool     { return c == '\r' || c == '\n' }
func isSpace(c rune) bool    { return c == ' ' || c == '\t' }
func isNonSpace(c rune) bool { return c != ' ' && c != '\t' }

// Fold writes the given unfolded (or partially folded) field line to out.
// Lines longer than the fold length are broken in front of a whitespace run,
// preferring the last run that keeps the line within the limit. Existing
// continuation lines that lack leading whitespace are given the fold indent.
// Each output line, the last included, is terminated with lb.
//
// It returns the number of bytes written and any write error.
func (vf *FoldEncoding) Fold(out io.Writer, f []byte, lb Break) (int64, error) {
	total := int64(0)
	write := func(bs ...[]byte) error {
		for _, b := range bs {
			n, err := out.Write(b)
			total += int64(n)
			if err != nil {
				return err
			}
		}
		return nil
	}

	if vf.foldLength == DoNotFold || len(f) <= vf.foldLength {
		return total, write(f, lb)
	}

	for i, line := range bytes.Split(f, lb) {
		var start int
		if i == 0 {
			// the name and the space after the colon stay put
			start = bytes.IndexByte(line, ':')
			if start < 0 {
				start = len(line)
			}
			for start++; start < len(line) && isSpace(rune(line[start])); start++ {
			}
		} else {
			if len(line) == 0 {
				continue
			}
			if !isSpace(rune(line[0])) {
				if err := write([]byte(vf.foldIndent)); err != nil {
					return total, err
				}
			}
			start = bytes.IndexFunc(line, isNonSpace)
			if start < 0 {
				start = len(line)
			}
		}

		for len(line) > vf.foldLength {
			ix := vf.breakAt(line, start)
			if ix < 0 {
				break
			}

			if err := write(line[:ix], lb); err != nil {
				return total, err
			}

			// the whitespace run becomes the fold
			line = line[ix:]
			start = bytes.IndexFunc(line, isNonSpace)
		}

		if err := write(line, lb); err != nil {
			return total, err
		}
	}

	return total, nil
}

// breakAt returns the index of the whitespace run to fold in front of, or -1
// if there is no run after start that is followed by more text.
func (vf *FoldEncoding) breakAt(line []byte, start int) int {
	best := -1
	for j := start + 1; j < len(line); j++ {
		if !isSpace(rune(line[j])) || isSpace(rune(line[j-1])) {
			continue
		}

		k := j
		for k < len(line) && isSpace(rune(line[k])) {
			k++
		}
		if k == len(line) {
			break
		}

		if j > vf.foldLength {
			if best < 0 {
				best = j
			}
			break
		}

		best = j
		j = k
	}
	return best
}
