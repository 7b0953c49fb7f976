package record

import (
	"reflect"

	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/varint"
	"github.com/zcrt/zcrt/zcerr"
)

// appendValue encodes rv according to t and appends the result to buf.
func appendValue(buf []byte, t tag.Type, rv reflect.Value) ([]byte, error) {
	switch t {
	case tag.Bool:
		return varint.AppendBool(buf, rv.Bool()), nil
	case tag.U8:
		return varint.AppendUint(buf, rv.Uint()), nil
	case tag.U16:
		return varint.AppendUint(buf, rv.Uint()), nil
	case tag.U32:
		return varint.AppendUint(buf, rv.Uint()), nil
	case tag.U64:
		return varint.AppendUint(buf, rv.Uint()), nil
	case tag.I8:
		return varint.AppendInt8(buf, int8(rv.Int())), nil
	case tag.I16:
		return varint.AppendInt16(buf, int16(rv.Int())), nil
	case tag.I32:
		return varint.AppendInt32(buf, int32(rv.Int())), nil
	case tag.I64:
		return varint.AppendInt64(buf, rv.Int()), nil
	case tag.F32:
		return varint.AppendFloat32(buf, float32(rv.Float())), nil
	case tag.F64:
		return varint.AppendFloat64(buf, rv.Float()), nil
	case tag.String:
		return varint.AppendString(buf, rv.String()), nil
	case tag.Array:
		return appendArray(buf, rv)
	case tag.Struct:
		return appendStruct(buf, rv)
	default:
		return buf, zcerr.New(zcerr.KindUnsupportedType, "no encoding for type tag").WithTypes(t.String(), "")
	}
}

// appendArray encodes a slice/array as: elem type tag byte, varint count,
// then each element encoded per the elem tag.
func appendArray(buf []byte, rv reflect.Value) ([]byte, error) {
	n := rv.Len()

	elemTag, ok := wireTagFor(rv.Type().Elem().Kind())
	if !ok {
		return buf, zcerr.New(zcerr.KindUnsupportedType, "unsupported array element kind")
	}

	buf = append(buf, byte(elemTag))
	buf = varint.AppendUint(buf, uint64(n))

	for i := 0; i < n; i++ {
		var err error
		buf, err = appendValue(buf, elemTag, rv.Index(i))
		if err != nil {
			return buf, err
		}
	}

	return buf, nil
}

// appendStruct encodes a struct value as: varint field count, then for
// each field: name-length varint, name bytes, type-tag byte, payload.
func appendStruct(buf []byte, rv reflect.Value) ([]byte, error) {
	t := rv.Type()

	type entry struct {
		name string
		tag  tag.Type
		val  reflect.Value
	}

	entries := make([]entry, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, skip := structTagName(sf)
		if skip {
			continue
		}

		wt, ok := wireTagFor(sf.Type.Kind())
		if !ok {
			return buf, zcerr.New(zcerr.KindUnsupportedType, "unsupported field kind").WithField(name)
		}

		entries = append(entries, entry{name: name, tag: wt, val: rv.Field(i)})
	}

	buf = varint.AppendUint(buf, uint64(len(entries)))

	for _, e := range entries {
		buf = varint.AppendUint(buf, uint64(len(e.name)))
		buf = append(buf, e.name...)
		buf = append(buf, byte(e.tag))

		var err error
		buf, err = appendValue(buf, e.tag, e.val)
		if err != nil {
			return buf, err
		}
	}

	return buf, nil
}
