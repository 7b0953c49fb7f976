package record

import (
	"reflect"

	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/varint"
	"github.com/zcrt/zcrt/zcerr"
)

// decodeInto decodes a payload tagged wireTag at the front of buf into
// target, applying width-coercion when wireTag is a narrower tag than
// target's own tag in the same family. Any other tag mismatch fails with
// FieldTypeMismatch.
func decodeInto(buf []byte, wireTag tag.Type, target reflect.Value, fieldName string) (int, error) {
	targetTag, ok := wireTagFor(target.Kind())
	if !ok {
		return 0, zcerr.New(zcerr.KindUnsupportedType, "unsupported target field kind").WithField(fieldName)
	}

	if wireTag == targetTag {
		return decodeExact(buf, wireTag, target, fieldName)
	}

	if tag.Widens(wireTag, targetTag) {
		return decodeWiden(buf, wireTag, targetTag, target, fieldName)
	}

	return 0, zcerr.New(zcerr.KindFieldTypeMismatch, "on-wire type does not match target field").
		WithField(fieldName).WithTypes(targetTag.String(), wireTag.String())
}

func decodeExact(buf []byte, t tag.Type, target reflect.Value, fieldName string) (int, error) {
	switch t {
	case tag.Bool:
		v, n, err := varint.ReadBool(buf)
		if err != nil {
			return 0, err
		}
		target.SetBool(v)
		return n, nil
	case tag.U8:
		v, n, err := varint.ReadUint8(buf)
		if err != nil {
			return 0, err
		}
		target.SetUint(uint64(v))
		return n, nil
	case tag.U16:
		v, n, err := varint.ReadUint16(buf)
		if err != nil {
			return 0, err
		}
		target.SetUint(uint64(v))
		return n, nil
	case tag.U32:
		v, n, err := varint.ReadUint32(buf)
		if err != nil {
			return 0, err
		}
		target.SetUint(uint64(v))
		return n, nil
	case tag.U64:
		v, n, err := varint.ReadUint(buf)
		if err != nil {
			return 0, err
		}
		target.SetUint(v)
		return n, nil
	case tag.I8:
		v, n, err := varint.ReadInt8(buf)
		if err != nil {
			return 0, err
		}
		target.SetInt(int64(v))
		return n, nil
	case tag.I16:
		v, n, err := varint.ReadInt16(buf)
		if err != nil {
			return 0, err
		}
		target.SetInt(int64(v))
		return n, nil
	case tag.I32:
		v, n, err := varint.ReadInt32(buf)
		if err != nil {
			return 0, err
		}
		target.SetInt(int64(v))
		return n, nil
	case tag.I64:
		v, n, err := varint.ReadInt64(buf)
		if err != nil {
			return 0, err
		}
		target.SetInt(v)
		return n, nil
	case tag.F32:
		v, n, err := varint.ReadFloat32(buf)
		if err != nil {
			return 0, err
		}
		target.SetFloat(float64(v))
		return n, nil
	case tag.F64:
		v, n, err := varint.ReadFloat64(buf)
		if err != nil {
			return 0, err
		}
		target.SetFloat(v)
		return n, nil
	case tag.String:
		v, n, err := varint.ReadString(buf)
		if err != nil {
			return 0, err
		}
		target.SetString(v)
		return n, nil
	case tag.Array:
		return decodeArrayInto(buf, target, fieldName)
	case tag.Struct:
		n, _, err := decodeStructBody(buf, target)
		return n, err
	default:
		return 0, zcerr.New(zcerr.KindUnsupportedType, "no decode rule for type tag").WithField(fieldName)
	}
}

// decodeWiden decodes a value tagged the narrower wireTag and stores it
// into target, whose own tag is targetTag. Only called once tag.Widens has
// already confirmed the pair is compatible.
func decodeWiden(buf []byte, wireTag, targetTag tag.Type, target reflect.Value, fieldName string) (int, error) {
	switch {
	case wireTag.IsUnsigned() && targetTag.IsUnsigned():
		v, n, err := readUnsigned(buf, wireTag)
		if err != nil {
			return 0, err
		}
		target.SetUint(v)
		return n, nil
	case wireTag.IsSigned() && targetTag.IsSigned():
		v, n, err := readSigned(buf, wireTag)
		if err != nil {
			return 0, err
		}
		target.SetInt(v)
		return n, nil
	case wireTag.IsFloat() && targetTag.IsFloat():
		// Only F32 -> F64 is reachable here; F64 is the widest float tag.
		v, n, err := varint.ReadFloat32(buf)
		if err != nil {
			return 0, err
		}
		target.SetFloat(float64(v))
		return n, nil
	default:
		return 0, zcerr.New(zcerr.KindFieldTypeMismatch, "unreachable widen combination").
			WithField(fieldName).WithTypes(targetTag.String(), wireTag.String())
	}
}

func readUnsigned(buf []byte, t tag.Type) (uint64, int, error) {
	switch t {
	case tag.U8:
		v, n, err := varint.ReadUint8(buf)
		return uint64(v), n, err
	case tag.U16:
		v, n, err := varint.ReadUint16(buf)
		return uint64(v), n, err
	case tag.U32:
		v, n, err := varint.ReadUint32(buf)
		return uint64(v), n, err
	default:
		return varint.ReadUint(buf)
	}
}

func readSigned(buf []byte, t tag.Type) (int64, int, error) {
	switch t {
	case tag.I8:
		v, n, err := varint.ReadInt8(buf)
		return int64(v), n, err
	case tag.I16:
		v, n, err := varint.ReadInt16(buf)
		return int64(v), n, err
	case tag.I32:
		v, n, err := varint.ReadInt32(buf)
		return int64(v), n, err
	default:
		return varint.ReadInt64(buf)
	}
}

// decodeArrayInto decodes an elem-tag-prefixed, varint-counted sequence
// into target (a slice field), allocating the backing array with make —
// ownership of that allocation transfers to the caller.
func decodeArrayInto(buf []byte, target reflect.Value, fieldName string) (int, error) {
	if len(buf) < 1 {
		return 0, zcerr.New(zcerr.KindEndOfBuffer, "array element tag truncated").WithField(fieldName)
	}
	elemTag := tag.Type(buf[0])
	if !elemTag.Valid() {
		return 0, zcerr.New(zcerr.KindInvalidTypeTag, "reserved array element tag").WithField(fieldName)
	}
	pos := 1

	count, n, err := varint.ReadUint(buf[pos:])
	if err != nil {
		return 0, err
	}
	pos += n

	// Every element occupies at least one byte on the wire (Null is the
	// sole exception, and arrays of Null carry no information worth
	// bounding). Reject counts that could not possibly fit before
	// allocating, so a truncated buffer can't force a huge allocation.
	if elemTag != tag.Null && count > uint64(len(buf)-pos) {
		return 0, zcerr.New(zcerr.KindEndOfBuffer, "array element count exceeds remaining buffer").WithField(fieldName)
	}

	sliceType := target.Type()
	out := reflect.MakeSlice(sliceType, int(count), int(count))
	for i := uint64(0); i < count; i++ {
		elemN, err := decodeInto(buf[pos:], elemTag, out.Index(int(i)), fieldName)
		if err != nil {
			return 0, err
		}
		pos += elemN
	}

	target.Set(out)
	return pos, nil
}

// decodeStructBody decodes a field-tagged struct body into target (an
// addressable struct value), matching wire entries against target's
// exported fields by name and skipping unmatched entries. It reports which
// target field indices were populated so the caller can apply defaults.
func decodeStructBody(buf []byte, target reflect.Value) (n int, matched []bool, err error) {
	t := target.Type()
	byName := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, skip := structTagName(t.Field(i))
		if skip {
			continue
		}
		byName[name] = i
	}

	matched = make([]bool, t.NumField())

	count, hn, err := varint.ReadUint(buf)
	if err != nil {
		return 0, nil, err
	}
	pos := hn

	for i := uint64(0); i < count; i++ {
		nameLen, nlN, err := varint.ReadUint(buf[pos:])
		if err != nil {
			return 0, nil, err
		}
		pos += nlN

		end := pos + int(nameLen)
		if end < pos || end > len(buf) {
			return 0, nil, zcerr.New(zcerr.KindEndOfBuffer, "field name truncated")
		}
		name := string(buf[pos:end])
		pos = end

		if pos >= len(buf) {
			return 0, nil, zcerr.New(zcerr.KindEndOfBuffer, "field type tag truncated")
		}
		wireTag := tag.Type(buf[pos])
		if !wireTag.Valid() {
			return 0, nil, zcerr.New(zcerr.KindInvalidTypeTag, "reserved type tag").WithField(name)
		}
		pos++

		idx, ok := byName[name]
		if !ok {
			// Skip-unknown: no field of the target type declares this name.
			skipN, err := skipValue(buf[pos:], wireTag)
			if err != nil {
				return 0, nil, err
			}
			pos += skipN
			continue
		}

		valN, err := decodeInto(buf[pos:], wireTag, target.Field(idx), name)
		if err != nil {
			return 0, nil, err
		}
		pos += valN
		matched[idx] = true // last write wins on a duplicate wire name
	}

	return pos, matched, nil
}
