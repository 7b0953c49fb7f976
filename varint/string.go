package varint

import (
	"encoding/binary"

	"github.com/zcrt/zcrt/zcerr"
)

// AppendString appends s as a v2-format string: a varint length prefix
// followed by the raw bytes. Strings are opaque byte sequences — UTF-8 is
// never validated.
func AppendString(buf []byte, s string) []byte {
	buf = AppendUint(buf, uint64(len(s)))
	return append(buf, s...)
}

// ReadString decodes a v2-format varint-length-prefixed string from the
// front of buf and returns a copy (owned by the caller). Zero-copy callers
// should use ReadStringView instead.
func ReadString(buf []byte) (string, int, error) {
	s, n, err := ReadStringView(buf)
	if err != nil {
		return "", 0, err
	}

	return string(s), n, nil
}

// ReadStringView decodes a v2-format varint-length-prefixed string from the
// front of buf and returns a slice that aliases buf directly — no copy is
// made. The returned slice is valid only as long as buf is not reused or
// freed (package view relies on this for its zero-copy accessor).
func ReadStringView(buf []byte) (view []byte, n int, err error) {
	length, lenN, err := ReadUint(buf)
	if err != nil {
		return nil, 0, err
	}

	start := lenN
	end := start + int(length)
	if end < start || end > len(buf) {
		return nil, 0, zcerr.New(zcerr.KindEndOfBuffer, "string payload truncated")
	}

	return buf[start:end], end, nil
}

// AppendStringFixed32 appends s using the v1 legacy encoding: a fixed
// little-endian uint32 length prefix followed by the raw bytes.
func AppendStringFixed32(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

// ReadStringFixed32 decodes a v1-format fixed-u32-length-prefixed string
// and returns a copy.
func ReadStringFixed32(buf []byte) (string, int, error) {
	view, n, err := ReadStringFixed32View(buf)
	if err != nil {
		return "", 0, err
	}

	return string(view), n, nil
}

// ReadStringFixed32View decodes a v1-format string and returns a slice
// aliasing buf without copying.
func ReadStringFixed32View(buf []byte) (view []byte, n int, err error) {
	if len(buf) < 4 {
		return nil, 0, zcerr.New(zcerr.KindEndOfBuffer, "string length prefix truncated")
	}

	length := binary.LittleEndian.Uint32(buf)
	start := 4
	end := start + int(length)
	if end < start || end > len(buf) {
		return nil, 0, zcerr.New(zcerr.KindEndOfBuffer, "string payload truncated")
	}

	return buf[start:end], end, nil
}
