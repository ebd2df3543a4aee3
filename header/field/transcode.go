package field

import (
	"encoding/base64"
	"mime"
	"strings"
	"unicode/utf8"
)

// HeaderCharset is the character set Encode writes encoded-words in. The
// conversion goes through CharsetEncoder, so any charset other than us-ascii,
// iso-8859-1, or utf-8 needs github.com/zostay/go-httpheader/header/encoding.
// Set it during initialization.
var HeaderCharset = "utf-8"

// maxWordText is the most UTF-8 text put in one encoded-word. It keeps a
// utf-8 word within the 75 octets RFC 2047 allows.
const maxWordText = 45

// structured lists the fields whose bodies are tokens and parameters rather
// than text. RFC 2047 encoded-words are never decoded or written in them.
var structured = map[string]bool{
	"content-transfer-encoding": true,
	"content-type":              true,
	"content-disposition":       true,
	"content-encoding":          true,
	"content-id":                true,
	"content-length":            true,
	"date":                      true,
	"message-id":                true,
	"mime-version":              true,
	"transfer-encoding":         true,
}

// IsStructured reports whether the named field carries a structured body.
// Such bodies are read and written exactly as they are.
func IsStructured(name string) bool {
	return structured[strings.ToLower(strings.TrimSpace(name))]
}

// Encode transforms a single field body into encoded-words when it contains
// characters that cannot appear in a header as-is or text that a reader would
// mistake for an encoded-word. It outputs b-type (Base-64) encoding in
// HeaderCharset, falling back to utf-8 when CharsetEncoder cannot convert the
// body. Bodies that need no encoding are returned unchanged.
func Encode(body string) string {
	s, err := EncodeCharset(HeaderCharset, body)
	if err != nil {
		s, _ = encodeWords("utf-8", body, func(_, s string) ([]byte, error) {
			return []byte(s), nil
		})
	}
	return s
}

// EncodeCharset works like Encode, but writes the encoded-words in the given
// charset. It returns an error if CharsetEncoder cannot convert the body.
func EncodeCharset(charset, body string) (string, error) {
	if !needsEncoding(body) {
		return body, nil
	}
	return encodeWords(charset, body, CharsetEncoder)
}

func needsEncoding(body string) bool {
	if strings.Contains(body, "=?") {
		return true
	}

	for _, c := range body {
		if c == '\t' {
			continue
		}
		if c < ' ' || c > '~' {
			return true
		}
	}

	return false
}

// encodeWords splits the body into runs of whole characters and writes each
// as an encoded-word. Decoders drop the space between adjacent words.
func encodeWords(charset, body string, encode Encoder) (string, error) {
	var words []string
	for len(body) > 0 {
		n := 0
		for n < len(body) {
			_, size := utf8.DecodeRuneInString(body[n:])
			if n > 0 && n+size > maxWordText {
				break
			}
			n += size
		}

		bs, err := encode(charset, body[:n])
		if err != nil {
			return "", err
		}

		words = append(words,
			"=?"+charset+"?b?"+base64.StdEncoding.EncodeToString(bs)+"?=")
		body = body[n:]
	}

	return strings.Join(words, " "), nil
}

// Decode transforms a single field body, turning any encoded-words into native
// unicode. The character set conversion goes through CharsetDecoder.
func Decode(body string) (string, error) {
	dec := &mime.WordDecoder{
		CharsetReader: CharsetDecoderToCharsetReader(CharsetDecoder),
	}

	if strings.Contains(body, "=?") {
		return dec.DecodeHeader(body)
	}

	return body, nil
}
