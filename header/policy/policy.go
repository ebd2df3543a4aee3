package policy

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/zostay/go-httpheader/header"
	"github.com/zostay/go-httpheader/header/value"
)

// Errors returned by the field checks.
var (
	// ErrUnknownEncoding is returned when a Content-Transfer-Encoding token is
	// neither registered in RFC 2045 nor a well-formed x-token.
	ErrUnknownEncoding = errors.New("unknown content transfer encoding")

	// ErrBadFieldName is returned when a field name is not a valid token.
	ErrBadFieldName = errors.New("invalid header field name")

	// ErrBadFieldValue is returned when a field body contains characters not
	// permitted in a header field.
	ErrBadFieldValue = errors.New("invalid header field value")

	// ErrEncodedMultipart is returned in strict mode when a multipart entity
	// declares an encoding other than 7bit, 8bit, or binary.
	ErrEncodedMultipart = errors.New("multipart entity may not use a transforming encoding")
)

// The encoding tokens registered by RFC 2045, section 6.1.
const (
	Bit7            = "7bit"
	Bit8            = "8bit"
	Binary          = "binary"
	QuotedPrintable = "quoted-printable"
	Base64          = "base64"
)

var registered = map[string]bool{
	Bit7:            true,
	Bit8:            true,
	Binary:          true,
	QuotedPrintable: true,
	Base64:          true,
}

// CheckTransferEncoding reports whether v names an encoding RFC 2045 allows:
// one of the registered tokens or an x-token, compared without regard to case.
func CheckTransferEncoding(v value.ContentTransferEncoding) error {
	enc := strings.ToLower(v.Encoding())
	if registered[enc] {
		return nil
	}

	if rest := strings.TrimPrefix(enc, "x-"); rest != enc && rest != "" &&
		strings.IndexFunc(rest, isNotTokenRune) < 0 {
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownEncoding, v.Encoding())
}

func isNotTokenRune(r rune) bool {
	return !httpguts.IsTokenRune(r)
}

// IsIdentity reports whether the encoding leaves the content unchanged on the
// wire, which is all a multipart entity may declare. An empty token names no
// encoding and is not an identity, just as CheckTransferEncoding rejects it.
// A missing field is a separate matter for the caller.
func IsIdentity(v value.ContentTransferEncoding) bool {
	switch strings.ToLower(v.Encoding()) {
	case Bit7, Bit8, Binary:
		return true
	default:
		return false
	}
}

// CheckField reports whether name and body are a syntactically valid header
// field for HTTP.
func CheckField(name, body string) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("%w: %q", ErrBadFieldName, name)
	}

	if !httpguts.ValidHeaderFieldValue(body) {
		return fmt.Errorf("%w: %q", ErrBadFieldValue, body)
	}

	return nil
}

// CheckMode selects how much Check looks at.
type CheckMode int

const (
	// CheckStandard checks every field's syntax and every
	// Content-Transfer-Encoding token.
	CheckStandard CheckMode = 0 + iota

	// CheckStrict adds checks across fields: a single
	// Content-Transfer-Encoding, and only identity encodings on multipart
	// entities.
	CheckStrict
)

// Failure is a single problem found by Check.
type Failure struct {
	Index   int // index of the field in the header, -1 for the header as a whole
	Message string
}

// Failures is the list of problems found by Check.
type Failures []Failure

// String lists the failures one per line.
func (fs Failures) String() string {
	buf := &strings.Builder{}
	for i, f := range fs {
		if i > 0 {
			_, _ = fmt.Fprint(buf, "\n")
		}
		if f.Index < 0 {
			_, _ = fmt.Fprintf(buf, " * Header: %s", f.Message)
			continue
		}
		_, _ = fmt.Fprintf(buf, " * Field %d: %s", f.Index, f.Message)
	}
	return buf.String()
}

// Error is returned by Check when it finds any problem.
type Error struct {
	Failures
}

// Error returns all the failures.
func (e *Error) Error() string {
	return fmt.Sprintf("header policy check failed:\n%s", e.Failures.String())
}

type checkStatus struct {
	Failures
}

func (s *checkStatus) Fail(ix int, err error) {
	s.Failures = append(s.Failures, Failure{ix, err.Error()})
}

// Check runs CheckField over every field in h and CheckTransferEncoding over
// every Content-Transfer-Encoding. It returns nil or an *Error listing every
// failure.
func Check(h *header.Header) error {
	return CheckWithMode(h, CheckStandard)
}

// CheckWithMode is Check with a choice of CheckMode.
func CheckWithMode(h *header.Header, mode CheckMode) error {
	s := &checkStatus{}

	for i, f := range h.ListFields() {
		if err := CheckField(f.Name(), f.Body()); err != nil {
			s.Fail(i, err)
		}

		if !strings.EqualFold(f.Name(), header.ContentTransferEncoding) {
			continue
		}

		cte := value.NewContentTransferEncoding(f.Body())
		if err := CheckTransferEncoding(cte); err != nil {
			s.Fail(i, err)
		}
	}

	if mode == CheckStrict {
		checkStrict(h, s)
	}

	if len(s.Failures) > 0 {
		return &Error{s.Failures}
	}

	return nil
}

func checkStrict(h *header.Header, s *checkStatus) {
	cte, err := h.GetTransferEncoding()
	switch {
	case errors.Is(err, header.ErrNoSuchField):
		return
	case errors.Is(err, header.ErrManyFields):
		s.Fail(-1, fmt.Errorf("%w: %s", header.ErrManyFields, header.ContentTransferEncoding))
	}

	ct, err := h.GetContentType()
	if err != nil {
		return
	}

	if ct.Type() == "multipart" && !IsIdentity(cte) {
		ixs := h.GetIndexesNamed(header.ContentTransferEncoding)
		s.Fail(ixs[0], fmt.Errorf("%w: %s", ErrEncodedMultipart, cte.Encoding()))
	}
}
