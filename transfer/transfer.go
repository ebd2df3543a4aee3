package transfer

import (
	"io"
	"strings"

	"github.com/zostay/go-httpheader/header"
	"github.com/zostay/go-httpheader/header/value"
)

// Content-Transfer-Encoding tokens with a Transcoding.
const (
	None            = ""                 // bytes are left as-is
	Bit7            = "7bit"             // bytes are left as-is
	Bit8            = "8bit"             // bytes are left as-is
	Binary          = "binary"           // bytes are left as-is
	QuotedPrintable = "quoted-printable" // bytes are transformed between quoted-printable and binary
	Base64          = "base64"           // bytes are transformed between base64 and binary
)

// Transcoding is a pair of functions that transform to and from a transfer
// encoding.
type Transcoding struct {
	// Encoder returns an io.WriteCloser that encodes what is written to it
	// and writes the encoded form to the given io.Writer. Close must be called
	// on it when done.
	Encoder func(io.Writer) io.WriteCloser

	// Decoder returns an io.Reader that reads the encoded form from the given
	// io.Reader and returns the decoded bytes.
	Decoder func(io.Reader) io.Reader
}

// AsIsTranscoding leaves bytes alone in both directions.
var AsIsTranscoding = Transcoding{NewAsIsEncoder, NewAsIsDecoder}

// Transcodings maps lowercase Content-Transfer-Encoding tokens to their
// Transcoding. It may be changed during init to alter handling globally.
var Transcodings = map[string]Transcoding{
	None:            AsIsTranscoding,
	Bit7:            AsIsTranscoding,
	Bit8:            AsIsTranscoding,
	Binary:          AsIsTranscoding,
	QuotedPrintable: {NewQuotedPrintableEncoder, NewQuotedPrintableDecoder},
	Base64:          {NewBase64Encoder, NewBase64Decoder},
}

// For returns the Transcoding for v, matching the token without regard to
// case. It returns false if there is none.
func For(v value.ContentTransferEncoding) (Transcoding, bool) {
	tc, found := Transcodings[strings.ToLower(v.Encoding())]
	return tc, found
}

// transcodingFor picks the Transcoding to apply to the body under h. A
// multipart entity never has its body transformed, nor does one without a
// single, known Content-Transfer-Encoding.
func transcodingFor(h *header.Header) Transcoding {
	if ct, err := h.GetContentType(); err == nil && ct.Type() == "multipart" {
		return AsIsTranscoding
	}

	cte, err := h.GetTransferEncoding()
	if err != nil {
		return AsIsTranscoding
	}

	if tc, found := For(cte); found {
		return tc
	}

	return AsIsTranscoding
}

// ApplyTransferEncoding returns an io.WriteCloser that encodes what is written
// to it as the Content-Transfer-Encoding of h says, passing bytes through
// unchanged when there is nothing to do. Close must be called when done.
func ApplyTransferEncoding(h *header.Header, w io.Writer) io.WriteCloser {
	return transcodingFor(h).Encoder(w)
}

// ApplyTransferDecoding returns an io.Reader that decodes r as the
// Content-Transfer-Encoding of h says, or r itself when there is nothing to
// do.
func ApplyTransferDecoding(h *header.Header, r io.Reader) io.Reader {
	return transcodingFor(h).Decoder(r)
}
