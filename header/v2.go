package header

import (
	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/varint"
	"github.com/zcrt/zcrt/zcerr"
)

// V2FormatVersion is the format_version value every v2 header carries.
const V2FormatVersion = 2

// V2 is the versioned, varint-framed header.
//
// DataSize is reserved: writers emit 0 and readers ignore it. The true
// end of a record's body is derived by the body
// parser itself (record.Reader reports BytesConsumed), never from this
// field — the mapped-file multi-record iterator (package view) depends on
// that discipline.
type V2 struct {
	TypeTag           tag.Type
	SchemaVersion     uint64
	DataSize          uint64
	SchemaFingerprint uint32
}

// Bytes serializes h into a varint-framed v2 header and returns the bytes.
func (h V2) Bytes() []byte {
	buf := make([]byte, 0, MagicSize+1+1+varint.MaxLen64*3)
	buf = append(buf, Magic[:]...)
	buf = varint.AppendUint(buf, V2FormatVersion)
	buf = append(buf, byte(h.TypeTag))
	buf = varint.AppendUint(buf, h.SchemaVersion)
	buf = varint.AppendUint(buf, h.DataSize)
	buf = varint.AppendUint(buf, uint64(h.SchemaFingerprint))

	return buf
}

// ParseV2 parses a v2 header from the front of buf and returns the parsed
// header plus the number of bytes consumed (callers need this to locate the
// body, since the header is variable-length).
//
// It fails with zcerr.ErrInvalidMagicNumber on a bad magic and
// zcerr.ErrUnsupportedFormatVersion if format_version < 2, keeping this
// reader forward compatible with any future v3+ framing that preserves
// this header shape.
func ParseV2(buf []byte) (h V2, n int, err error) {
	if len(buf) < MagicSize {
		return V2{}, 0, zcerr.New(zcerr.KindEndOfBuffer, "v2 header truncated").WithPosition(len(buf))
	}
	if !HasMagic(buf) {
		return V2{}, 0, zcerr.New(zcerr.KindInvalidMagicNumber, "bad magic").WithPosition(0)
	}

	pos := MagicSize

	formatVersion, fvN, err := varint.ReadUint(buf[pos:])
	if err != nil {
		return V2{}, 0, err
	}
	pos += fvN

	if formatVersion < V2FormatVersion {
		return V2{}, 0, zcerr.New(zcerr.KindUnsupportedFormatVersion, "v2 reader requires format_version>=2").WithPosition(MagicSize)
	}

	if pos >= len(buf) {
		return V2{}, 0, zcerr.New(zcerr.KindEndOfBuffer, "v2 header missing type tag").WithPosition(pos)
	}
	t := tag.Type(buf[pos])
	if !t.Valid() {
		return V2{}, 0, zcerr.New(zcerr.KindInvalidTypeTag, "reserved type tag").WithPosition(pos)
	}
	pos++

	schemaVersion, svN, err := varint.ReadUint(buf[pos:])
	if err != nil {
		return V2{}, 0, err
	}
	pos += svN

	dataSize, dsN, err := varint.ReadUint(buf[pos:])
	if err != nil {
		return V2{}, 0, err
	}
	pos += dsN

	fingerprint, fpN, err := varint.ReadUint32(buf[pos:])
	if err != nil {
		return V2{}, 0, err
	}
	pos += fpN

	h = V2{
		TypeTag:           t,
		SchemaVersion:     schemaVersion,
		DataSize:          dataSize,
		SchemaFingerprint: fingerprint,
	}

	return h, pos, nil
}
