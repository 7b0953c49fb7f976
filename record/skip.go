package record

import (
	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/varint"
	"github.com/zcrt/zcrt/zcerr"
)

// SkipValue advances past one tagged payload of type t at the front of buf
// without materializing it, returning the number of bytes consumed. This
// is the forward-compatibility primitive: it needs no knowledge of the
// reader's static type, only the on-wire tag. Exported for package view,
// whose zero-copy accessor walks wire entries without a reflect target to
// decode into.
func SkipValue(buf []byte, t tag.Type) (int, error) {
	return skipValue(buf, t)
}

func skipValue(buf []byte, t tag.Type) (int, error) {
	switch t {
	case tag.Null:
		return 0, nil
	case tag.Bool:
		if len(buf) < 1 {
			return 0, zcerr.New(zcerr.KindEndOfBuffer, "bool payload truncated")
		}
		return 1, nil
	case tag.U8, tag.U16, tag.U32, tag.U64, tag.I8, tag.I16, tag.I32, tag.I64:
		return varint.Skip(buf)
	case tag.F32:
		if len(buf) < 4 {
			return 0, zcerr.New(zcerr.KindEndOfBuffer, "float32 payload truncated")
		}
		return 4, nil
	case tag.F64:
		if len(buf) < 8 {
			return 0, zcerr.New(zcerr.KindEndOfBuffer, "float64 payload truncated")
		}
		return 8, nil
	case tag.String:
		_, n, err := varint.ReadStringView(buf)
		return n, err
	case tag.Array:
		return skipArray(buf)
	case tag.Struct:
		return skipStruct(buf)
	default:
		return 0, zcerr.New(zcerr.KindUnsupportedType, "no skip rule for type tag").WithTypes(t.String(), "")
	}
}

// skipArray skips an elem-tag-prefixed, varint-counted sequence of elements.
func skipArray(buf []byte) (int, error) {
	if len(buf) < 1 {
		return 0, zcerr.New(zcerr.KindEndOfBuffer, "array element tag truncated")
	}
	elemTag := tag.Type(buf[0])
	if !elemTag.Valid() {
		return 0, zcerr.New(zcerr.KindInvalidTypeTag, "reserved array element tag")
	}
	pos := 1

	count, n, err := varint.ReadUint(buf[pos:])
	if err != nil {
		return 0, err
	}
	pos += n

	for i := uint64(0); i < count; i++ {
		elemN, err := skipValue(buf[pos:], elemTag)
		if err != nil {
			return 0, err
		}
		pos += elemN
	}

	return pos, nil
}

// skipStruct skips a nested field-tagged struct body: varint field count,
// then for each entry, name-length, name, type-tag, and a recursive skip
// of the payload.
func skipStruct(buf []byte) (int, error) {
	count, n, err := varint.ReadUint(buf)
	if err != nil {
		return 0, err
	}
	pos := n

	for i := uint64(0); i < count; i++ {
		nameLen, nlN, err := varint.ReadUint(buf[pos:])
		if err != nil {
			return 0, err
		}
		pos += nlN

		end := pos + int(nameLen)
		if end < pos || end > len(buf) {
			return 0, zcerr.New(zcerr.KindEndOfBuffer, "field name truncated")
		}
		pos = end

		if pos >= len(buf) {
			return 0, zcerr.New(zcerr.KindEndOfBuffer, "field type tag truncated")
		}
		fieldTag := tag.Type(buf[pos])
		if !fieldTag.Valid() {
			return 0, zcerr.New(zcerr.KindInvalidTypeTag, "reserved type tag")
		}
		pos++

		valN, err := skipValue(buf[pos:], fieldTag)
		if err != nil {
			return 0, err
		}
		pos += valN
	}

	return pos, nil
}
