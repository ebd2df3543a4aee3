// Package transfer encodes and decodes entity bodies according to a
// Content-Transfer-Encoding. Only quoted-printable and base64 change the
// bytes. The identity encodings 7bit, 8bit, and binary, along with a missing
// field, pass the bytes through untouched.
//
// "Decoding" turns the wire form into the raw bytes of the content and
// "encoding" does the reverse.
package transfer
