package view

import (
	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/varint"
	"github.com/zcrt/zcrt/zcerr"
)

// decodeFieldValue materializes a payload tagged t at the front of buf
// into a generic Go value, without needing a static target type. String
// payloads alias buf directly (the borrowed-slice variant); every other
// kind is copied.
func decodeFieldValue(buf []byte, t tag.Type) (value any, borrowed bool, n int, err error) {
	switch t {
	case tag.Bool:
		v, n, err := varint.ReadBool(buf)
		return v, false, n, err
	case tag.U8:
		v, n, err := varint.ReadUint8(buf)
		return v, false, n, err
	case tag.U16:
		v, n, err := varint.ReadUint16(buf)
		return v, false, n, err
	case tag.U32:
		v, n, err := varint.ReadUint32(buf)
		return v, false, n, err
	case tag.U64:
		v, n, err := varint.ReadUint(buf)
		return v, false, n, err
	case tag.I8:
		v, n, err := varint.ReadInt8(buf)
		return v, false, n, err
	case tag.I16:
		v, n, err := varint.ReadInt16(buf)
		return v, false, n, err
	case tag.I32:
		v, n, err := varint.ReadInt32(buf)
		return v, false, n, err
	case tag.I64:
		v, n, err := varint.ReadInt64(buf)
		return v, false, n, err
	case tag.F32:
		v, n, err := varint.ReadFloat32(buf)
		return v, false, n, err
	case tag.F64:
		v, n, err := varint.ReadFloat64(buf)
		return v, false, n, err
	case tag.String:
		v, n, err := varint.ReadStringView(buf)
		return v, true, n, err
	case tag.Array:
		return decodeArrayValue(buf)
	case tag.Struct:
		return decodeStructValue(buf)
	default:
		return nil, false, 0, zcerr.New(zcerr.KindUnsupportedType, "no view decode rule for type tag").WithTypes(t.String(), "")
	}
}

// decodeArrayValue decodes an elem-tag-prefixed, varint-counted array into
// an owned []any — composite values are always owned.
func decodeArrayValue(buf []byte) (any, bool, int, error) {
	if len(buf) < 1 {
		return nil, false, 0, zcerr.New(zcerr.KindEndOfBuffer, "array element tag truncated")
	}
	elemTag := tag.Type(buf[0])
	if !elemTag.Valid() {
		return nil, false, 0, zcerr.New(zcerr.KindInvalidTypeTag, "reserved array element tag")
	}
	pos := 1

	count, n, err := varint.ReadUint(buf[pos:])
	if err != nil {
		return nil, false, 0, err
	}
	pos += n

	out := make([]any, 0, count)
	for i := uint64(0); i < count; i++ {
		v, _, elemN, err := decodeFieldValue(buf[pos:], elemTag)
		if err != nil {
			return nil, false, 0, err
		}
		pos += elemN
		out = append(out, v)
	}

	return out, false, pos, nil
}

// decodeStructValue decodes a nested field-tagged struct into an owned
// map[string]any.
func decodeStructValue(buf []byte) (any, bool, int, error) {
	count, n, err := varint.ReadUint(buf)
	if err != nil {
		return nil, false, 0, err
	}
	pos := n

	out := make(map[string]any, count)
	for i := uint64(0); i < count; i++ {
		nameLen, nlN, err := varint.ReadUint(buf[pos:])
		if err != nil {
			return nil, false, 0, err
		}
		pos += nlN

		end := pos + int(nameLen)
		if end < pos || end > len(buf) {
			return nil, false, 0, zcerr.New(zcerr.KindEndOfBuffer, "field name truncated")
		}
		name := string(buf[pos:end])
		pos = end

		if pos >= len(buf) {
			return nil, false, 0, zcerr.New(zcerr.KindEndOfBuffer, "field type tag truncated")
		}
		fieldTag := tag.Type(buf[pos])
		if !fieldTag.Valid() {
			return nil, false, 0, zcerr.New(zcerr.KindInvalidTypeTag, "reserved type tag")
		}
		pos++

		v, _, valN, err := decodeFieldValue(buf[pos:], fieldTag)
		if err != nil {
			return nil, false, 0, err
		}
		pos += valN
		out[name] = v
	}

	return out, false, pos, nil
}
