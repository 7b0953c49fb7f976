package record

import (
	"reflect"

	"github.com/zcrt/zcrt/header"
	"github.com/zcrt/zcrt/internal/options"
	"github.com/zcrt/zcrt/schema"
	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/zcerr"
)

// Reader decodes v2, versioned, field-tagged records.
type Reader struct {
	cfg *ReaderConfig
}

// NewReader constructs a Reader with the given options applied.
func NewReader(opts ...ReaderOption) *Reader {
	cfg := &ReaderConfig{}
	_ = options.Apply(cfg, opts...)

	return &Reader{cfg: cfg}
}

var defaultReader = NewReader()

// Read decodes buf against s into a freshly zero-valued T.
func Read[T any](buf []byte, s *schema.Schema) (T, error) {
	var v T
	err := defaultReader.ReadInto(buf, s, &v)
	return v, err
}

// ReadInto decodes buf against s into dst, which must be a non-nil pointer.
// It implements the full v2 read pipeline: header phase, body phase
// (skip-unknown plus width coercion), and default phase.
func (r *Reader) ReadInto(buf []byte, s *schema.Schema, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return zcerr.New(zcerr.KindUnsupportedType, "dst must be a non-nil pointer")
	}
	target := rv.Elem()

	topTag, ok := wireTagFor(target.Kind())
	if !ok {
		return zcerr.New(zcerr.KindUnsupportedType, "unsupported target kind")
	}

	h, hn, err := header.ParseV2(buf)
	if err != nil {
		return err
	}

	if h.TypeTag != topTag {
		return zcerr.New(zcerr.KindTypeMismatch, "top-level type tag does not match target type").
			WithTypes(topTag.String(), h.TypeTag.String())
	}

	if r.cfg != nil && r.cfg.strictFingerprint && s != nil && h.SchemaFingerprint != s.Fingerprint() {
		return zcerr.New(zcerr.KindSchemaVersionMismatch, "schema fingerprint mismatch")
	}

	body := buf[hn:]

	if topTag != tag.Struct {
		_, err := decodeInto(body, topTag, target, "")
		return err
	}

	_, matched, err := decodeStructBody(body, target)
	if err != nil {
		return err
	}

	return applyDefaults(target, matched, s)
}

// applyDefaults fills every unmatched top-level field of target from s's
// FieldDefinitions: a declared default is materialized, an undeclared
// field keeps its Go zero value, and a required field with neither fails
// with RequiredFieldMissing.
func applyDefaults(target reflect.Value, matched []bool, s *schema.Schema) error {
	t := target.Type()

	for i := 0; i < t.NumField(); i++ {
		if matched[i] {
			continue
		}

		name, skip := structTagName(t.Field(i))
		if skip {
			continue
		}

		fd, ok := s.Field(name)
		if !ok {
			continue // unknown to the schema: zero value stands
		}

		if !fd.HasDefault && fd.Required {
			return zcerr.New(zcerr.KindRequiredFieldMissing, "required field absent from both wire and schema default").
				WithField(name)
		}

		def := fd.ParsedDefault()
		if def == nil {
			continue // Null, Array, Struct: no literal form, the Go zero value stands
		}
		dv := reflect.ValueOf(def)
		field := target.Field(i)
		if !dv.Type().AssignableTo(field.Type()) {
			return zcerr.New(zcerr.KindFieldTypeMismatch, "schema default literal type does not match field type").
				WithField(name)
		}
		field.Set(dv)
	}

	return nil
}
