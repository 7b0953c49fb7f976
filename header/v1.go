package header

import (
	"github.com/zcrt/zcrt/endian"
	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/zcerr"
)

var le = endian.GetLittleEndianEngine()

// V1Size is the fixed, total byte width of the legacy v1 header:
// 4 (magic) + 2 (version) + 1 (type tag) + 4 (data size).
const V1Size = 11

// V1FormatVersion is the only format_version value v1 headers carry.
const V1FormatVersion = 1

// V1 is the legacy, fixed-width header used by the simple (unversioned)
// codec.
type V1 struct {
	TypeTag  tag.Type
	DataSize uint32
}

// Bytes serializes h into an 11-byte fixed header.
func (h V1) Bytes() []byte {
	buf := make([]byte, V1Size)
	copy(buf[0:4], Magic[:])
	le.PutUint16(buf[4:6], V1FormatVersion)
	buf[6] = byte(h.TypeTag)
	le.PutUint32(buf[7:11], h.DataSize)

	return buf
}

// ParseV1 parses an 11-byte v1 header from the front of buf.
//
// It fails with zcerr.ErrInvalidMagicNumber if the magic doesn't match,
// zcerr.ErrEndOfBuffer if buf is shorter than V1Size, and
// zcerr.ErrUnsupportedFormatVersion if the embedded format_version isn't 1.
func ParseV1(buf []byte) (V1, error) {
	if len(buf) < V1Size {
		return V1{}, zcerr.New(zcerr.KindEndOfBuffer, "v1 header truncated").WithPosition(len(buf))
	}
	if !HasMagic(buf) {
		return V1{}, zcerr.New(zcerr.KindInvalidMagicNumber, "bad magic").WithPosition(0)
	}

	version := le.Uint16(buf[4:6])
	if version != V1FormatVersion {
		return V1{}, zcerr.New(zcerr.KindUnsupportedFormatVersion, "v1 reader requires format_version=1").WithPosition(4)
	}

	t := tag.Type(buf[6])
	if !t.Valid() {
		return V1{}, zcerr.New(zcerr.KindInvalidTypeTag, "reserved type tag").WithPosition(6)
	}

	dataSize := le.Uint32(buf[7:11])

	return V1{TypeTag: t, DataSize: dataSize}, nil
}
