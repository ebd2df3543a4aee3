package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-httpheader/header/encoding"
	"github.com/zostay/go-httpheader/header/field"
)

func TestCharsetDecoder(t *testing.T) {
	t.Parallel()

	s, err := encoding.CharsetDecoder("iso-8859-1", []byte{0x63, 0x61, 0x66, 0xe9})
	assert.NoError(t, err)
	assert.Equal(t, "café", s)

	_, err = encoding.CharsetDecoder("no-such-charset", []byte("x"))
	assert.Error(t, err)
}

func TestCharsetEncoder(t *testing.T) {
	t.Parallel()

	b, err := encoding.CharsetEncoder("iso-8859-1", "café")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x63, 0x61, 0x66, 0xe9}, b)
}

func TestDecodeWithLoadedCharsets(t *testing.T) {
	t.Parallel()

	s, err := field.Decode("=?iso-8859-1?q?caf=E9?=")
	assert.NoError(t, err)
	assert.Equal(t, "café", s)
}
