package varint

import (
	"encoding/binary"

	"github.com/zcrt/zcrt/zcerr"
)

// MaxLen64 is the maximum number of bytes a varint-encoded uint64 can occupy.
const MaxLen64 = binary.MaxVarintLen64

// AppendUint appends n to buf as a little-endian base-128 varint and
// returns the extended slice.
func AppendUint(buf []byte, n uint64) []byte {
	return binary.AppendUvarint(buf, n)
}

// Len returns the number of bytes AppendUint emits for n, without encoding it.
func Len(n uint64) int {
	l := 1
	for n >= 0x80 {
		n >>= 7
		l++
	}

	return l
}

// ReadUint decodes a varint-encoded uint64 from the front of buf.
//
// It returns zcerr.ErrEndOfBuffer if buf is exhausted before a terminating
// byte is found, and zcerr.ErrInvalidData if the 10th byte either still
// carries the continuation bit or would overflow the 64-bit value (only
// its lowest bit fits at that shift).
func ReadUint(buf []byte) (value uint64, n int, err error) {
	var shift uint
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if i == MaxLen64-1 && b > 1 {
			return 0, 0, zcerr.New(zcerr.KindInvalidData, "varint overflows 64 bits on final allowed byte")
		}

		if b < 0x80 {
			value |= uint64(b) << shift
			return value, i + 1, nil
		}

		value |= uint64(b&0x7F) << shift
		shift += 7
	}

	return 0, 0, zcerr.New(zcerr.KindEndOfBuffer, "varint truncated")
}

// fits reports whether v can be represented in a value of bitWidth bits
// without loss, used to reject decoding a varint into a narrower target
// than the value it actually holds.
func fits(v uint64, bitWidth int) bool {
	if bitWidth >= 64 {
		return true
	}

	return v>>uint(bitWidth) == 0
}

// ReadUint8 decodes a varint and requires the value to fit in 8 bits.
func ReadUint8(buf []byte) (uint8, int, error) {
	v, n, err := ReadUint(buf)
	if err != nil {
		return 0, 0, err
	}
	if !fits(v, 8) {
		return 0, 0, zcerr.New(zcerr.KindInvalidData, "varint value exceeds u8 range")
	}

	return uint8(v), n, nil
}

// ReadUint16 decodes a varint and requires the value to fit in 16 bits.
func ReadUint16(buf []byte) (uint16, int, error) {
	v, n, err := ReadUint(buf)
	if err != nil {
		return 0, 0, err
	}
	if !fits(v, 16) {
		return 0, 0, zcerr.New(zcerr.KindInvalidData, "varint value exceeds u16 range")
	}

	return uint16(v), n, nil
}

// ReadUint32 decodes a varint and requires the value to fit in 32 bits.
func ReadUint32(buf []byte) (uint32, int, error) {
	v, n, err := ReadUint(buf)
	if err != nil {
		return 0, 0, err
	}
	if !fits(v, 32) {
		return 0, 0, zcerr.New(zcerr.KindInvalidData, "varint value exceeds u32 range")
	}

	return uint32(v), n, nil
}

// AppendInt8, AppendInt16, AppendInt32 and AppendInt64 append a signed
// integer as a varint by bit-reinterpreting it as its unsigned counterpart
// of the same width (no zigzag).
func AppendInt8(buf []byte, v int8) []byte  { return AppendUint(buf, uint64(uint8(v))) }
func AppendInt16(buf []byte, v int16) []byte { return AppendUint(buf, uint64(uint16(v))) }
func AppendInt32(buf []byte, v int32) []byte { return AppendUint(buf, uint64(uint32(v))) }
func AppendInt64(buf []byte, v int64) []byte { return AppendUint(buf, uint64(v)) }

// ReadInt8 decodes a varint and bit-reinterprets it as an int8.
func ReadInt8(buf []byte) (int8, int, error) {
	v, n, err := ReadUint8(buf)
	if err != nil {
		return 0, 0, err
	}

	return int8(v), n, nil
}

// ReadInt16 decodes a varint and bit-reinterprets it as an int16.
func ReadInt16(buf []byte) (int16, int, error) {
	v, n, err := ReadUint16(buf)
	if err != nil {
		return 0, 0, err
	}

	return int16(v), n, nil
}

// ReadInt32 decodes a varint and bit-reinterprets it as an int32.
func ReadInt32(buf []byte) (int32, int, error) {
	v, n, err := ReadUint32(buf)
	if err != nil {
		return 0, 0, err
	}

	return int32(v), n, nil
}

// ReadInt64 decodes a varint and bit-reinterprets it as an int64.
func ReadInt64(buf []byte) (int64, int, error) {
	v, n, err := ReadUint(buf)
	if err != nil {
		return 0, 0, err
	}

	return int64(v), n, nil
}

// Skip advances past a single varint at the front of buf and returns its
// encoded length, without materializing the value. Used by the skip-unknown
// path (package record) where only the byte count matters.
func Skip(buf []byte) (n int, err error) {
	_, n, err = ReadUint(buf)
	return n, err
}
