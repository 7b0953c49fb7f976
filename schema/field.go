package schema

import (
	"strconv"

	"github.com/zcrt/zcrt/tag"
)

// FieldDefinition describes one field of a Schema: its name, wire type, and
// version lifecycle.
type FieldDefinition struct {
	// Name is the field's wire name. Must be non-empty and unique within a Schema.
	Name string

	// Type restricts this field to one of TypeTag's primitive or composite kinds.
	Type tag.Type

	// Required indicates the field must be present (on the wire or via
	// default) for a read to succeed. Defaults to true when constructed
	// with NewField; zero-value FieldDefinition is also required=false by
	// Go's zero value, so callers building FieldDefinition literals should
	// set Required explicitly.
	Required bool

	// DefaultValue is a string-encoded literal materialized into the
	// target type when the field is absent from the wire. HasDefault
	// reports whether a default was declared at all, so an empty
	// DefaultValue with HasDefault set is an empty-string default. A field
	// with no declared default and Required false gets the type's zero
	// value.
	DefaultValue string
	HasDefault   bool

	// AddedInVersion is the schema version this field first appeared in.
	// Defaults to 1.
	AddedInVersion int

	// RemovedInVersion, if non-zero, is the schema version this field was
	// removed in. Zero means "never removed."
	RemovedInVersion int
}

// NewField constructs a required FieldDefinition with AddedInVersion 1.
func NewField(name string, t tag.Type) FieldDefinition {
	return FieldDefinition{Name: name, Type: t, Required: true, AddedInVersion: 1}
}

// WithDefault returns a copy of fd marked optional with the given default
// literal.
func (fd FieldDefinition) WithDefault(value string) FieldDefinition {
	fd.Required = false
	fd.DefaultValue = value
	fd.HasDefault = true
	return fd
}

// WithAddedIn returns a copy of fd with AddedInVersion set.
func (fd FieldDefinition) WithAddedIn(version int) FieldDefinition {
	fd.AddedInVersion = version
	return fd
}

// WithRemovedIn returns a copy of fd with RemovedInVersion set.
func (fd FieldDefinition) WithRemovedIn(version int) FieldDefinition {
	fd.RemovedInVersion = version
	return fd
}

// ActiveIn reports whether fd is active in schema version v: added_in <= v
// and (removed_in absent or removed_in > v).
func (fd FieldDefinition) ActiveIn(v int) bool {
	added := fd.AddedInVersion
	if added == 0 {
		added = 1
	}

	if added > v {
		return false
	}

	return fd.RemovedInVersion == 0 || fd.RemovedInVersion > v
}

// ParsedDefault materializes fd.DefaultValue as a Go value matching fd.Type.
// On parse failure (or when HasDefault is false), it returns the type's
// zero value — the one deliberate exception to strict error propagation
// in this codec. Null, Array and Struct have no literal form and always
// yield nil, which the reader treats as "keep the Go zero value".
func (fd FieldDefinition) ParsedDefault() any {
	if !fd.HasDefault {
		return zeroValue(fd.Type)
	}

	v, ok := parseLiteral(fd.DefaultValue, fd.Type)
	if !ok {
		return zeroValue(fd.Type)
	}

	return v
}

func zeroValue(t tag.Type) any {
	switch t {
	case tag.Bool:
		return false
	case tag.U8:
		return uint8(0)
	case tag.U16:
		return uint16(0)
	case tag.U32:
		return uint32(0)
	case tag.U64:
		return uint64(0)
	case tag.I8:
		return int8(0)
	case tag.I16:
		return int16(0)
	case tag.I32:
		return int32(0)
	case tag.I64:
		return int64(0)
	case tag.F32:
		return float32(0)
	case tag.F64:
		return float64(0)
	case tag.String:
		return ""
	default:
		return nil
	}
}

func parseLiteral(s string, t tag.Type) (any, bool) {
	switch t {
	case tag.Bool:
		v, err := strconv.ParseBool(s)
		return v, err == nil
	case tag.U8:
		v, err := strconv.ParseUint(s, 10, 8)
		return uint8(v), err == nil
	case tag.U16:
		v, err := strconv.ParseUint(s, 10, 16)
		return uint16(v), err == nil
	case tag.U32:
		v, err := strconv.ParseUint(s, 10, 32)
		return uint32(v), err == nil
	case tag.U64:
		v, err := strconv.ParseUint(s, 10, 64)
		return v, err == nil
	case tag.I8:
		v, err := strconv.ParseInt(s, 10, 8)
		return int8(v), err == nil
	case tag.I16:
		v, err := strconv.ParseInt(s, 10, 16)
		return int16(v), err == nil
	case tag.I32:
		v, err := strconv.ParseInt(s, 10, 32)
		return int32(v), err == nil
	case tag.I64:
		v, err := strconv.ParseInt(s, 10, 64)
		return v, err == nil
	case tag.F32:
		v, err := strconv.ParseFloat(s, 32)
		return float32(v), err == nil
	case tag.F64:
		v, err := strconv.ParseFloat(s, 64)
		return v, err == nil
	case tag.String:
		return s, true
	default:
		return nil, false
	}
}
