// Package value models header field bodies as typed, immutable values.
//
// Each well-known header is one variant of the sealed Value interface, told
// apart by its Kind. Anything else is carried as a Raw value, so every field
// that can be read can also be represented:
//
//	v, err := value.Parse("content-transfer-encoding", "base64")
//	switch tv := v.(type) {
//	case value.ContentTransferEncoding:
//		fmt.Println(tv.Encoding()) // base64
//	case value.Raw:
//		fmt.Println(tv.Body())
//	}
//
// Values never validate their content beyond what is needed to build them.
// A ContentTransferEncoding accepts any token at all. Checking tokens against
// the registered encodings is the job of the header/policy package.
//
// All values are safe to share between goroutines.
package value
