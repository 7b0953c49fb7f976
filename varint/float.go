package varint

import (
	"encoding/binary"
	"math"

	"github.com/zcrt/zcrt/zcerr"
)

// AppendFloat32 appends v's native little-endian IEEE-754 bit pattern to
// buf. No NaN canonicalization is performed — the bit pattern round-trips
// exactly, NaN payload and sign included.
func AppendFloat32(buf []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
}

// AppendFloat64 appends v's native little-endian IEEE-754 bit pattern to buf.
func AppendFloat64(buf []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
}

// ReadFloat32 decodes a fixed 4-byte little-endian float32 from the front of buf.
func ReadFloat32(buf []byte) (float32, int, error) {
	if len(buf) < 4 {
		return 0, 0, zcerr.New(zcerr.KindEndOfBuffer, "float32 payload truncated")
	}

	return math.Float32frombits(binary.LittleEndian.Uint32(buf)), 4, nil
}

// ReadFloat64 decodes a fixed 8-byte little-endian float64 from the front of buf.
func ReadFloat64(buf []byte) (float64, int, error) {
	if len(buf) < 8 {
		return 0, 0, zcerr.New(zcerr.KindEndOfBuffer, "float64 payload truncated")
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(buf)), 8, nil
}
