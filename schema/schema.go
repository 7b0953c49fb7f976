package schema

import "github.com/zcrt/zcrt/internal/hash"

// Schema is a named, versioned list of FieldDefinitions.
type Schema struct {
	Name    string
	Version int
	Fields  []FieldDefinition
}

// New constructs a Schema with the given name, version, and fields.
func New(name string, version int, fields ...FieldDefinition) *Schema {
	return &Schema{Name: name, Version: version, Fields: fields}
}

// Field looks up a field by name, returning ok=false if not declared.
func (s *Schema) Field(name string) (FieldDefinition, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return FieldDefinition{}, false
}

// Fingerprint computes an advisory schema fingerprint:
// hash(schema.name) XOR schema.version, truncated to 32 bits.
//
// This is intentionally weak — distinct schemas can collide — and is never
// used to gate a read, only to detect gross schema mismatches when a
// caller chooses to compare it, typically via internal/collision.Tracker.
func (s *Schema) Fingerprint() uint32 {
	fp := hash.ID(s.Name) ^ uint64(s.Version)
	return uint32(fp)
}
