package value_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-httpheader/header/value"
)

func TestContentTransferEncoding(t *testing.T) {
	t.Parallel()

	tokens := []string{
		"7bit", "8bit", "binary", "quoted-printable", "base64",
		"x-uuencode", "BASE64", "", "not a token\x01",
	}

	for _, tok := range tokens {
		v := value.NewContentTransferEncoding(tok)
		assert.Equal(t, tok, v.Encoding())
		assert.Equal(t, tok, v.Value())
		assert.Equal(t, value.ContentTransferEncodingName, v.Name())
		assert.Equal(t, value.KindContentTransferEncoding, v.Kind())
	}
}

func TestContentTransferEncoding_Render(t *testing.T) {
	t.Parallel()

	v := value.NewContentTransferEncoding("base64")
	assert.Equal(t, "base64", v.Encoding())
	assert.Equal(t, "Content-Transfer-Encoding: base64", value.Render(v))
	assert.Equal(t, "Content-Transfer-Encoding: base64", v.String())
}

func TestContentTransferEncoding_Equality(t *testing.T) {
	t.Parallel()

	qp1 := value.NewContentTransferEncoding("quoted-printable")
	qp2 := value.NewContentTransferEncoding("quoted-printable")
	assert.True(t, qp1 == qp2)
	assert.True(t, value.Equal(qp1, qp2))

	b64 := value.NewContentTransferEncoding("base64")
	seven := value.NewContentTransferEncoding("7bit")
	assert.False(t, b64 == seven)
	assert.False(t, value.Equal(b64, seven))

	// the token is compared verbatim
	upper := value.NewContentTransferEncoding("BASE64")
	assert.False(t, b64 == upper)
	assert.False(t, value.Equal(b64, upper))

	var a, b value.Value = qp1, qp2
	assert.True(t, a == b)
}

func TestContentTransferEncoding_ConcurrentReads(t *testing.T) {
	t.Parallel()

	v := value.NewContentTransferEncoding("quoted-printable")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "quoted-printable", v.Encoding())
				assert.Equal(t, "Content-Transfer-Encoding: quoted-printable", value.Render(v))
			}
		}()
	}
	wg.Wait()
}

func TestParse(t *testing.T) {
	t.Parallel()

	v, err := value.Parse("content-transfer-encoding", "base64")
	require.NoError(t, err)
	require.IsType(t, value.ContentTransferEncoding{}, v)
	assert.Equal(t, "Content-Transfer-Encoding", v.Name())
	assert.Equal(t, "base64", v.(value.ContentTransferEncoding).Encoding())
	assert.Equal(t, "Content-Transfer-Encoding: base64", value.Render(v))

	v, err = value.Parse("CONTENT-TYPE", `text/plain; charset="utf-8"`)
	require.NoError(t, err)
	ct, isCT := v.(value.ContentType)
	require.True(t, isCT)
	assert.Equal(t, "text/plain", ct.MediaType())
	assert.Equal(t, "utf-8", ct.Charset())
	assert.Equal(t, "Content-Type: text/plain; charset=utf-8", value.Render(ct))

	v, err = value.Parse("Date", "Sat, 31 Jan 2015 03:23:09 +0000")
	require.NoError(t, err)
	d, isDate := v.(value.Date)
	require.True(t, isDate)
	assert.True(t, time.Date(2015, 1, 31, 3, 23, 9, 0, time.UTC).Equal(d.Time()))
	assert.Equal(t, "Date: Sat, 31 Jan 2015 03:23:09 GMT", value.Render(d))

	v, err = value.Parse("from", "Sterling <sterling@example.com>")
	require.NoError(t, err)
	f, isFrom := v.(value.From)
	require.True(t, isFrom)
	require.Len(t, f.AddressList(), 1)
	assert.Equal(t, "sterling@example.com", f.AddressList()[0].Address())

	v, err = value.Parse("X-Mailer", "hdr 1.0")
	require.NoError(t, err)
	r, isRaw := v.(value.Raw)
	require.True(t, isRaw)
	assert.Equal(t, value.KindRaw, r.Kind())
	assert.Equal(t, "X-Mailer", r.Name())
	assert.Equal(t, "hdr 1.0", r.Body())
	assert.Equal(t, "X-Mailer: hdr 1.0", value.Render(r))
}

func TestParse_Error(t *testing.T) {
	t.Parallel()

	v, err := value.Parse("content-type", "text/plain; charset")
	require.Error(t, err)

	var perr *value.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "content-type", perr.Name)
	assert.Equal(t, "text/plain; charset", perr.Body)
	assert.NotNil(t, errors.Unwrap(err))

	r, isRaw := v.(value.Raw)
	require.True(t, isRaw)
	assert.Equal(t, "content-type", r.Name())
	assert.Equal(t, "text/plain; charset", r.Body())

	v, err = value.Parse("Date", "the day after tomorrow")
	assert.ErrorContains(t, err, "unable to parse Date field body")
	assert.Equal(t, value.KindRaw, v.Kind())
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, value.KindContentTransferEncoding, value.KindOf("Content-Transfer-Encoding"))
	assert.Equal(t, value.KindContentTransferEncoding, value.KindOf("content-TRANSFER-encoding"))
	assert.Equal(t, value.KindContentType, value.KindOf("content-type"))
	assert.Equal(t, value.KindDate, value.KindOf("DATE"))
	assert.Equal(t, value.KindFrom, value.KindOf("From"))
	assert.Equal(t, value.KindRaw, value.KindOf("Subject"))

	assert.Equal(t, "content-transfer-encoding", value.KindContentTransferEncoding.String())
	assert.Equal(t, "Kind(42)", value.Kind(42).String())
}

func TestCanonicalName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Content-Transfer-Encoding", value.CanonicalName("CONTENT-TRANSFER-ENCODING"))
	assert.Equal(t, "Content-Type", value.CanonicalName("content-type"))
	assert.Equal(t, "x-custom", value.CanonicalName("x-custom"))
}

func TestIs(t *testing.T) {
	t.Parallel()

	v := value.NewContentTransferEncoding("7bit")
	assert.True(t, value.Is(v, "content-transfer-encoding"))
	assert.False(t, value.Is(v, "content-type"))

	r := value.NewRaw("X-Thing", "1")
	assert.True(t, value.Is(r, "x-thing"))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, value.Equal(nil, nil))
	assert.False(t, value.Equal(value.NewRaw("a", "b"), nil))

	assert.True(t, value.Equal(value.NewRaw("X-Thing", "1"), value.NewRaw("x-thing", "1")))
	assert.False(t, value.Equal(value.NewRaw("X-Thing", "1"), value.NewRaw("x-thing", "2")))

	// same body, different kind
	assert.False(t, value.Equal(
		value.NewRaw("Content-Transfer-Encoding", "base64"),
		value.NewContentTransferEncoding("base64"),
	))

	utc := time.Date(2015, 1, 31, 3, 23, 9, 0, time.UTC)
	est := utc.In(time.FixedZone("EST", -5*60*60))
	assert.True(t, value.Equal(value.NewDate(utc), value.NewDate(est)))

	ct1 := value.NewContentType("text/plain", map[string]string{"Charset": "utf-8"})
	ct2, err := value.ParseContentType("text/plain; charset=utf-8")
	require.NoError(t, err)
	assert.True(t, value.Equal(ct1, ct2))
}
