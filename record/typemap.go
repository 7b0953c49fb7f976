package record

import (
	"reflect"

	"github.com/zcrt/zcrt/tag"
)

// wireTagFor derives the TypeTag for a Go reflect.Kind, the generalization
// of fractus's isFixedKind split into a full tag.Type mapping, grounded on
// rawbytedev-fractus/fractus.go's per-kind field walk.
//
// Fixed-size Go arrays (reflect.Array) are deliberately unsupported: the
// array decode path allocates its target with reflect.MakeSlice, which
// has no equivalent for a fixed-size array kind.
func wireTagFor(k reflect.Kind) (tag.Type, bool) {
	switch k {
	case reflect.Bool:
		return tag.Bool, true
	case reflect.Uint8:
		return tag.U8, true
	case reflect.Uint16:
		return tag.U16, true
	case reflect.Uint32:
		return tag.U32, true
	case reflect.Uint64, reflect.Uint:
		return tag.U64, true
	case reflect.Int8:
		return tag.I8, true
	case reflect.Int16:
		return tag.I16, true
	case reflect.Int32:
		return tag.I32, true
	case reflect.Int64, reflect.Int:
		return tag.I64, true
	case reflect.Float32:
		return tag.F32, true
	case reflect.Float64:
		return tag.F64, true
	case reflect.String:
		return tag.String, true
	case reflect.Slice:
		return tag.Array, true
	case reflect.Struct:
		return tag.Struct, true
	default:
		return tag.Null, false
	}
}

// structTagName returns the wire name for struct field sf and whether the
// field should be skipped entirely: a `zcrt:"-"` tag skips it; a
// `zcrt:"customName"` tag overrides the wire name; absent the tag the Go
// field name is used verbatim (matching google-gapid's
// framework/binary/entity.go convention of reading a struct tag with a
// plain-string fallback to f.Name).
func structTagName(sf reflect.StructField) (name string, skip bool) {
	if sf.PkgPath != "" && !sf.Anonymous {
		return "", true
	}

	raw, ok := sf.Tag.Lookup("zcrt")
	if !ok || raw == "" {
		return sf.Name, false
	}
	if raw == "-" {
		return "", true
	}

	return raw, false
}
