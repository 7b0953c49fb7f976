// Package record implements the field-tagged struct codec: the legacy
// fixed-width v1 writer/reader pair and the versioned, schema-aware v2
// writer/reader pair.
//
// The v2 writer walks a Go value with reflect and emits one tagged entry
// per exported field; the v2 reader walks the wire entries independently
// of the target type, matching by name and applying skip-unknown,
// width-coercion, and default-materialization as it goes. Neither path
// allocates the caller's output buffer — Write reports BufferTooSmall
// rather than growing it.
package record
