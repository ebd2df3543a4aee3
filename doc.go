// Package httpheader models message header fields as typed values.
//
// The typed values live in header/value. Each well-known field has its own
// immutable type, Content-Transfer-Encoding being the one everything else is
// built around, and any other field is kept as a value.Raw so that nothing is
// lost. The types share the sealed value.Value interface, so code can switch
// on them and be sure it has covered every case.
//
// The remaining packages surround that core:
//
//   - header/field splits a header block into fields, unfolds and decodes
//     them on the way in, and folds them on the way out.
//   - header is the ordered collection that owns the fields and hands out
//     typed values, keeping the original bytes so unchanged headers are
//     written back exactly as they were read.
//   - header/param parses parameterized values such as Content-Type.
//   - header/encoding adds the full set of charsets for encoded-words.
//   - header/policy checks fields against RFC 2045 and HTTP syntax, which the
//     value types deliberately do not do.
//   - transfer encodes and decodes bodies per the Content-Transfer-Encoding.
//
// The hdr command in tools/hdr exercises all of it from the command line.
package httpheader
