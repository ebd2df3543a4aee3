package field_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-httpheader/header/field"
)

func TestNewFoldEncoding(t *testing.T) {
	t.Parallel()

	_, err := field.NewFoldEncoding("x", 80)
	assert.ErrorIs(t, err, field.ErrFoldIndentSpace)

	_, err = field.NewFoldEncoding("", 80)
	assert.ErrorIs(t, err, field.ErrFoldIndentTooShort)

	_, err = field.NewFoldEncoding(" ", 0)
	assert.ErrorIs(t, err, field.ErrFoldLengthTooShort)

	_, err = field.NewFoldEncoding(" ", -7)
	assert.ErrorIs(t, err, field.ErrFoldLengthTooShort)

	_, err = field.NewFoldEncoding("  ", 2)
	assert.ErrorIs(t, err, field.ErrFoldIndentTooLong)

	vf, err := field.NewFoldEncoding(" ", field.DoNotFold)
	assert.NoError(t, err)
	assert.Equal(t, field.DoNotFoldEncoding, vf)

	vf, err = field.NewFoldEncoding(" ", field.DefaultFoldLength)
	assert.NoError(t, err)
	assert.Equal(t, field.DefaultFoldEncoding, vf)
}

func TestFoldEncoding_Unfold(t *testing.T) {
	t.Parallel()

	uf := field.DefaultFoldEncoding.Unfold([]byte("X-Thing: a\r\n b\n\tc"))
	assert.Equal(t, []byte("X-Thing: a b\tc"), uf)
}

func TestFoldEncoding_Fold(t *testing.T) {
	t.Parallel()

	lb := field.Break("\n")

	buf := &bytes.Buffer{}
	n, err := field.DefaultFoldEncoding.Fold(buf, []byte("Content-Transfer-Encoding: base64"), lb)
	assert.NoError(t, err)
	assert.Equal(t, int64(34), n)
	assert.Equal(t, "Content-Transfer-Encoding: base64\n", buf.String())

	vf, err := field.NewFoldEncoding(" ", 20)
	require.NoError(t, err)

	buf.Reset()
	n, err = vf.Fold(buf, []byte("Subject: aaaa bbbb cccc dddd eeee"), lb)
	assert.NoError(t, err)
	assert.Equal(t, "Subject: aaaa bbbb\n cccc dddd eeee\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)

	// a run of whitespace moves to the continuation line intact
	buf.Reset()
	_, err = vf.Fold(buf, []byte("Subject: aaaa bbbb \t cccc dddd"), lb)
	assert.NoError(t, err)
	assert.Equal(t, "Subject: aaaa bbbb\n \t cccc dddd\n", buf.String())

	// tokens are never split, even when nothing fits
	vf, err = field.NewFoldEncoding(" ", 10)
	require.NoError(t, err)

	buf.Reset()
	_, err = vf.Fold(buf, []byte("X: abcdefghijklmnopqrstuvwxyz"), lb)
	assert.NoError(t, err)
	assert.Equal(t, "X: abcdefghijklmnopqrstuvwxyz\n", buf.String())

	buf.Reset()
	_, err = vf.Fold(buf, []byte("X: abcdefghijklmnop qrstuvwxyz"), lb)
	assert.NoError(t, err)
	assert.Equal(t, "X: abcdefghijklmnop\n qrstuvwxyz\n", buf.String())

	// the name is never folded away from its colon
	buf.Reset()
	_, err = vf.Fold(buf, []byte("Content-Transfer-Encoding: base64"), lb)
	assert.NoError(t, err)
	assert.Equal(t, "Content-Transfer-Encoding: base64\n", buf.String())

	// existing continuation lines keep their breaks
	buf.Reset()
	_, err = vf.Fold(buf, []byte("X-Long: one\ntwo three four"), lb)
	assert.NoError(t, err)
	assert.Equal(t, "X-Long: one\n two three\n four\n", buf.String())

	buf.Reset()
	_, err = field.DoNotFoldEncoding.Fold(buf, []byte("Subject: aaaa bbbb cccc dddd eeee"), lb)
	assert.NoError(t, err)
	assert.Equal(t, "Subject: aaaa bbbb cccc dddd eeee\n", buf.String())
}

func TestFoldEncoding_FoldUnfoldLossless(t *testing.T) {
	t.Parallel()

	lb := field.Break("\r\n")
	vf, err := field.NewFoldEncoding(" ", 20)
	require.NoError(t, err)

	for _, line := range []string{
		"Subject: aaaa bbbb cccc dddd eeee",
		"X-Token: " + strings.Repeat("x", 1200),
		"X-Mixed: " + strings.Repeat("y", 50) + "  z\tw " + strings.Repeat("q", 30),
	} {
		buf := &bytes.Buffer{}
		_, err := vf.Fold(buf, []byte(line), lb)
		require.NoError(t, err)

		folded := strings.TrimSuffix(buf.String(), "\r\n")
		assert.Equal(t, line, string(vf.Unfold([]byte(folded))))
	}
}
