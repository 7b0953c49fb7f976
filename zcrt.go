// Package zcrt provides a compact, schema-driven binary serialization
// engine for structs and primitive values.
//
// zcrt encodes a Go value as a single framed record: a small header
// (magic, format version, type tag, schema metadata) followed by a body.
// Two wire formats coexist:
//
//   - v1 ("simple"): a fixed 11-byte header and a fixed-width, positional
//     body. No schema is involved; the reader's static type alone drives
//     decoding. Smallest encoding, no evolution support.
//   - v2 ("versioned"): a varint-framed header and a field-tagged body,
//     driven by a *schema.Schema on both the write and read side. Every
//     field is written with its name and wire type, which lets a v2 reader
//     skip fields it doesn't know about and fill in defaults for fields it
//     expects but the writer didn't emit — schema evolution without a
//     side-channel registry.
//
// # Basic usage
//
//	type Person struct {
//	    ID   uint32
//	    Name string
//	}
//
//	s := schema.New("person", 1,
//	    schema.NewField("ID", tag.U32),
//	    schema.NewField("Name", tag.String),
//	)
//
//	buf := make([]byte, 256)
//	n, err := zcrt.Write(Person{ID: 1, Name: "Alice"}, buf, s)
//	person, err := zcrt.Read[Person](buf[:n], s)
//
// For the unversioned fixed-width path, use WriteSimple/ReadSimple, which
// need no schema at all.
//
// # Package structure
//
// This package is a thin convenience layer over record (the write/read
// codecs), view (the zero-copy accessor and mmap'd file reader), schema
// (field and schema definitions), and validate (schema and evolution
// checks). Advanced callers needing buffer-pool control, strict
// fingerprint checking, or lazy field access should use those packages
// directly.
package zcrt

import (
	"github.com/zcrt/zcrt/record"
	"github.com/zcrt/zcrt/schema"
	"github.com/zcrt/zcrt/view"
)

// Write encodes v against s into buf using the versioned (v2) format and
// returns the number of bytes written. It fails with a BufferTooSmall
// error if buf cannot hold the encoded record.
func Write(v any, buf []byte, s *schema.Schema) (int, error) {
	return record.Write(v, buf, s)
}

// Read decodes buf against s into a freshly zero-valued T using the
// versioned (v2) format.
func Read[T any](buf []byte, s *schema.Schema) (T, error) {
	return record.Read[T](buf, s)
}

// NewWriter constructs a versioned-format Writer with the given options
// applied. Use this over the package-level Write when a caller-owned
// buffer pool (record.WithBufferPool) is needed.
func NewWriter(opts ...record.WriterOption) *record.Writer {
	return record.NewWriter(opts...)
}

// NewReader constructs a versioned-format Reader with the given options
// applied, e.g. record.WithStrictFingerprint to opt out of the
// spec-mandated advisory-only fingerprint check.
func NewReader(opts ...record.ReaderOption) *record.Reader {
	return record.NewReader(opts...)
}

// WriteSimple encodes v using the legacy fixed-width (v1) format: no
// schema, no field tags, positional decoding driven entirely by the
// reader's static type.
func WriteSimple(v any, buf []byte) (int, error) {
	return record.SimpleWrite(v, buf)
}

// ReadSimple decodes a v1 record from buf into a freshly zero-valued T.
func ReadSimple[T any](buf []byte) (T, error) {
	return record.SimpleRead[T](buf)
}

// OpenView parses buf's header (v1 or v2, tried in that order) and returns
// an Accessor positioned at the start of the body, for lazy field access
// without materializing the whole value.
func OpenView(buf []byte) (*view.Accessor, error) {
	return view.NewAccessor(buf)
}

// OpenFile memory-maps path read-only and returns a FileView over it,
// usable as an Accessor/FileIterator input buffer without copying the
// file into the heap. Callers must Close the returned FileView.
func OpenFile(path string, opts ...view.Option) (*view.FileView, error) {
	return view.OpenFile(path, opts...)
}
