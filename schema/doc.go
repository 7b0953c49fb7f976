// Package schema defines the versioned field descriptor model that the
// record writer and reader reconcile differences against.
//
// A Schema is a named, versioned list of FieldDefinitions. Each field
// tracks the schema version it was added in and, optionally, the version it
// was removed in, which is what lets the reader (package record) apply
// default materialization and skip-unknown without reflecting on the
// writer's original type.
package schema
