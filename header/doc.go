// Package header holds an ordered collection of header fields, the owning
// header set for the typed values in package value.
//
// A Header keeps each field in the order it was read, along with the exact
// bytes it was read from, so a header that is parsed and written back without
// changes comes out byte-for-byte the same. Fields are looked up by name
// without regard to case, and each field can be read either as a string or as
// a typed value.Value:
//
//	h, err := header.Parse(raw, header.CRLF)
//	if err != nil {
//		return err
//	}
//
//	cte, err := h.GetTransferEncoding()
//	if err == nil {
//		fmt.Println(cte.Encoding())
//	}
//
// Typed values are computed from the field when asked for and never cached, so
// reading a Header from many goroutines at once is safe. Modifying one is not.
package header
