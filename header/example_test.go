package header_test

import (
	"fmt"
	"os"

	"github.com/zostay/go-httpheader/header"
	"github.com/zostay/go-httpheader/header/value"
)

func ExampleLookup() {
	h, err := header.Parse([]byte("content-transfer-encoding: base64\r\n\r\n"), header.CRLF)
	if err != nil {
		panic(err)
	}

	cte, err := header.Lookup[value.ContentTransferEncoding](h)
	if err != nil {
		panic(err)
	}

	fmt.Println(cte.Encoding())
	fmt.Println(value.Render(cte))
	// Output:
	// base64
	// Content-Transfer-Encoding: base64
}

func ExampleHeader_SetTransferEncoding() {
	h := header.New(header.LF)
	h.SetContentType(value.NewContentType("text/plain", map[string]string{"charset": "utf-8"}))
	h.SetTransferEncoding(value.NewContentTransferEncoding("quoted-printable"))

	_, _ = h.WriteTo(os.Stdout)
	// Output:
	// Content-Type: text/plain; charset=utf-8
	// Content-Transfer-Encoding: quoted-printable
}
