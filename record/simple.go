package record

import (
	"math"
	"reflect"

	"github.com/zcrt/zcrt/endian"
	"github.com/zcrt/zcrt/header"
	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/varint"
	"github.com/zcrt/zcrt/zcerr"
)

var le = endian.GetLittleEndianEngine()

// SimpleWrite encodes v using the legacy v1 format: the fixed 11-byte
// header followed by a positionally-decoded, untagged body. Scalars use
// fixed-width little-endian encoding rather than varint.
func SimpleWrite(v any, buf []byte) (int, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}

	topTag, ok := wireTagFor(rv.Kind())
	if !ok {
		return 0, zcerr.New(zcerr.KindUnsupportedType, "unsupported top-level value kind")
	}

	body, err := appendValueFixed(nil, topTag, rv)
	if err != nil {
		return 0, err
	}

	h := header.V1{TypeTag: topTag, DataSize: uint32(len(body))}
	total := len(h.Bytes()) + len(body)
	if total > len(buf) {
		return 0, zcerr.New(zcerr.KindBufferTooSmall, "output buffer too small for encoded v1 record").
			WithPosition(total)
	}

	n := copy(buf, h.Bytes())
	n += copy(buf[n:], body)

	return n, nil
}

// SimpleRead decodes a v1 record from buf into a freshly zero-valued T.
func SimpleRead[T any](buf []byte) (T, error) {
	var v T

	rv := reflect.ValueOf(&v).Elem()
	topTag, ok := wireTagFor(rv.Kind())
	if !ok {
		return v, zcerr.New(zcerr.KindUnsupportedType, "unsupported target kind")
	}

	h, err := header.ParseV1(buf)
	if err != nil {
		return v, err
	}

	if h.TypeTag != topTag {
		return v, zcerr.New(zcerr.KindTypeMismatch, "top-level type tag does not match target type").
			WithTypes(topTag.String(), h.TypeTag.String())
	}

	body := buf[header.V1Size:]
	if _, err := decodeValueFixed(body, topTag, rv); err != nil {
		return v, err
	}

	return v, nil
}

// appendValueFixed encodes rv per t using v1's fixed-width, untagged layout.
func appendValueFixed(buf []byte, t tag.Type, rv reflect.Value) ([]byte, error) {
	switch t {
	case tag.Bool:
		if rv.Bool() {
			return append(buf, 0x01), nil
		}
		return append(buf, 0x00), nil
	case tag.U8:
		return append(buf, byte(rv.Uint())), nil
	case tag.U16:
		return le.AppendUint16(buf, uint16(rv.Uint())), nil
	case tag.U32:
		return le.AppendUint32(buf, uint32(rv.Uint())), nil
	case tag.U64:
		return le.AppendUint64(buf, rv.Uint()), nil
	case tag.I8:
		return append(buf, byte(int8(rv.Int()))), nil
	case tag.I16:
		return le.AppendUint16(buf, uint16(int16(rv.Int()))), nil
	case tag.I32:
		return le.AppendUint32(buf, uint32(int32(rv.Int()))), nil
	case tag.I64:
		return le.AppendUint64(buf, uint64(rv.Int())), nil
	case tag.F32:
		return le.AppendUint32(buf, math.Float32bits(float32(rv.Float()))), nil
	case tag.F64:
		return le.AppendUint64(buf, math.Float64bits(rv.Float())), nil
	case tag.String:
		return varint.AppendStringFixed32(buf, rv.String()), nil
	case tag.Array:
		return appendArrayFixed(buf, rv)
	case tag.Struct:
		return appendStructFixed(buf, rv)
	default:
		return buf, zcerr.New(zcerr.KindUnsupportedType, "no v1 encoding for type tag").WithTypes(t.String(), "")
	}
}

func appendArrayFixed(buf []byte, rv reflect.Value) ([]byte, error) {
	n := rv.Len()
	buf = le.AppendUint32(buf, uint32(n))

	elemTag, ok := wireTagFor(rv.Type().Elem().Kind())
	if !ok {
		return buf, zcerr.New(zcerr.KindUnsupportedType, "unsupported array element kind")
	}

	for i := 0; i < n; i++ {
		var err error
		buf, err = appendValueFixed(buf, elemTag, rv.Index(i))
		if err != nil {
			return buf, err
		}
	}

	return buf, nil
}

func appendStructFixed(buf []byte, rv reflect.Value) ([]byte, error) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		_, skip := structTagName(sf)
		if skip {
			continue
		}

		wt, ok := wireTagFor(sf.Type.Kind())
		if !ok {
			return buf, zcerr.New(zcerr.KindUnsupportedType, "unsupported field kind").WithField(sf.Name)
		}

		var err error
		buf, err = appendValueFixed(buf, wt, rv.Field(i))
		if err != nil {
			return buf, err
		}
	}

	return buf, nil
}

// decodeValueFixed decodes a value tagged t per v1's fixed-width layout
// into target, returning the number of bytes consumed.
func decodeValueFixed(buf []byte, t tag.Type, target reflect.Value) (int, error) {
	switch t {
	case tag.Bool:
		if len(buf) < 1 {
			return 0, zcerr.New(zcerr.KindEndOfBuffer, "bool payload truncated")
		}
		target.SetBool(buf[0] != 0x00)
		return 1, nil
	case tag.U8:
		if len(buf) < 1 {
			return 0, zcerr.New(zcerr.KindEndOfBuffer, "u8 payload truncated")
		}
		target.SetUint(uint64(buf[0]))
		return 1, nil
	case tag.U16:
		if len(buf) < 2 {
			return 0, zcerr.New(zcerr.KindEndOfBuffer, "u16 payload truncated")
		}
		target.SetUint(uint64(le.Uint16(buf)))
		return 2, nil
	case tag.U32:
		if len(buf) < 4 {
			return 0, zcerr.New(zcerr.KindEndOfBuffer, "u32 payload truncated")
		}
		target.SetUint(uint64(le.Uint32(buf)))
		return 4, nil
	case tag.U64:
		if len(buf) < 8 {
			return 0, zcerr.New(zcerr.KindEndOfBuffer, "u64 payload truncated")
		}
		target.SetUint(le.Uint64(buf))
		return 8, nil
	case tag.I8:
		if len(buf) < 1 {
			return 0, zcerr.New(zcerr.KindEndOfBuffer, "i8 payload truncated")
		}
		target.SetInt(int64(int8(buf[0])))
		return 1, nil
	case tag.I16:
		if len(buf) < 2 {
			return 0, zcerr.New(zcerr.KindEndOfBuffer, "i16 payload truncated")
		}
		target.SetInt(int64(int16(le.Uint16(buf))))
		return 2, nil
	case tag.I32:
		if len(buf) < 4 {
			return 0, zcerr.New(zcerr.KindEndOfBuffer, "i32 payload truncated")
		}
		target.SetInt(int64(int32(le.Uint32(buf))))
		return 4, nil
	case tag.I64:
		if len(buf) < 8 {
			return 0, zcerr.New(zcerr.KindEndOfBuffer, "i64 payload truncated")
		}
		target.SetInt(int64(le.Uint64(buf)))
		return 8, nil
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
		v, n, err := varint.ReadStringFixed32(buf)
		if err != nil {
			return 0, err
		}
		target.SetString(v)
		return n, nil
	case tag.Array:
		return decodeArrayFixed(buf, target)
	case tag.Struct:
		return decodeStructFixed(buf, target)
	default:
		return 0, zcerr.New(zcerr.KindUnsupportedType, "no v1 decode rule for type tag").WithTypes(t.String(), "")
	}
}

func decodeArrayFixed(buf []byte, target reflect.Value) (int, error) {
	if len(buf) < 4 {
		return 0, zcerr.New(zcerr.KindEndOfBuffer, "array length prefix truncated")
	}
	count := le.Uint32(buf)
	pos := 4

	elemTag, ok := wireTagFor(target.Type().Elem().Kind())
	if !ok {
		return 0, zcerr.New(zcerr.KindUnsupportedType, "unsupported array element kind")
	}

	out := reflect.MakeSlice(target.Type(), int(count), int(count))
	for i := uint32(0); i < count; i++ {
		n, err := decodeValueFixed(buf[pos:], elemTag, out.Index(int(i)))
		if err != nil {
			return 0, err
		}
		pos += n
	}

	target.Set(out)
	return pos, nil
}

func decodeStructFixed(buf []byte, target reflect.Value) (int, error) {
	t := target.Type()
	pos := 0

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		_, skip := structTagName(sf)
		if skip {
			continue
		}

		wt, ok := wireTagFor(sf.Type.Kind())
		if !ok {
			return 0, zcerr.New(zcerr.KindUnsupportedType, "unsupported field kind").WithField(sf.Name)
		}

		n, err := decodeValueFixed(buf[pos:], wt, target.Field(i))
		if err != nil {
			return 0, err
		}
		pos += n
	}

	return pos, nil
}
