package zcerr

import (
	"errors"
	"fmt"
)

// Kind is a closed set of failure categories. Every *Error carries exactly
// one Kind; callers should branch on Kind (via errors.Is against the
// sentinels below) rather than on message text.
type Kind uint8

const (
	_ Kind = iota

	// Schema
	KindInvalidSchema
	KindSchemaVersionMismatch
	KindSchemaEvolutionError
	KindIncompatibleSchema

	// Data integrity
	KindInvalidData
	KindInvalidMagicNumber
	KindCorruptedData
	KindChecksumMismatch

	// Type
	KindUnsupportedType
	KindTypeMismatch
	KindInvalidTypeTag

	// Buffer/memory
	KindBufferTooSmall
	KindOutOfMemory
	KindEndOfBuffer

	// Field
	KindRequiredFieldMissing
	KindUnknownField
	KindFieldTypeMismatch

	// File I/O
	KindFileNotFound
	KindFileReadError
	KindFileWriteError
	KindMappingFailed

	// Version
	KindUnsupportedFormatVersion
	KindBackwardCompatibilityError
	KindForwardCompatibilityError
)

// String returns the human-readable name of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidSchema:
		return "InvalidSchema"
	case KindSchemaVersionMismatch:
		return "SchemaVersionMismatch"
	case KindSchemaEvolutionError:
		return "SchemaEvolutionError"
	case KindIncompatibleSchema:
		return "IncompatibleSchema"
	case KindInvalidData:
		return "InvalidData"
	case KindInvalidMagicNumber:
		return "InvalidMagicNumber"
	case KindCorruptedData:
		return "CorruptedData"
	case KindChecksumMismatch:
		return "ChecksumMismatch"
	case KindUnsupportedType:
		return "UnsupportedType"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindInvalidTypeTag:
		return "InvalidTypeTag"
	case KindBufferTooSmall:
		return "BufferTooSmall"
	case KindOutOfMemory:
		return "OutOfMemory"
	case KindEndOfBuffer:
		return "EndOfBuffer"
	case KindRequiredFieldMissing:
		return "RequiredFieldMissing"
	case KindUnknownField:
		return "UnknownField"
	case KindFieldTypeMismatch:
		return "FieldTypeMismatch"
	case KindFileNotFound:
		return "FileNotFound"
	case KindFileReadError:
		return "FileReadError"
	case KindFileWriteError:
		return "FileWriteError"
	case KindMappingFailed:
		return "MappingFailed"
	case KindUnsupportedFormatVersion:
		return "UnsupportedFormatVersion"
	case KindBackwardCompatibilityError:
		return "BackwardCompatibilityError"
	case KindForwardCompatibilityError:
		return "ForwardCompatibilityError"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by every zcrt public entry
// point. It carries a Kind plus whichever optional context was known at the
// failure site.
//
// Error implements Unwrap so errors.Is(err, zcerr.ErrBufferTooSmall) and
// similar sentinel checks work against errors produced with context.
type Error struct {
	Kind     Kind
	Message  string
	Field    string // optional: field name involved, "" if not applicable
	Position int    // optional: byte position within the buffer, -1 if not applicable
	Expected string // optional: expected type/tag name, "" if not applicable
	Actual   string // optional: actual type/tag name, "" if not applicable
}

// sentinel returns a bare *Error for Kind k, used both as the package-level
// sentinel value and as the Unwrap target for contextualized errors.
func sentinel(k Kind, msg string) *Error {
	return &Error{Kind: k, Message: msg, Position: -1}
}

// Package-level sentinels, one per Kind in the closed taxonomy above.
var (
	ErrInvalidSchema              = sentinel(KindInvalidSchema, "invalid schema")
	ErrSchemaVersionMismatch      = sentinel(KindSchemaVersionMismatch, "schema version mismatch")
	ErrSchemaEvolutionError       = sentinel(KindSchemaEvolutionError, "schema evolution error")
	ErrIncompatibleSchema         = sentinel(KindIncompatibleSchema, "incompatible schema")
	ErrInvalidData                = sentinel(KindInvalidData, "invalid data")
	ErrInvalidMagicNumber         = sentinel(KindInvalidMagicNumber, "invalid magic number")
	ErrCorruptedData              = sentinel(KindCorruptedData, "corrupted data")
	ErrChecksumMismatch           = sentinel(KindChecksumMismatch, "checksum mismatch")
	ErrUnsupportedType            = sentinel(KindUnsupportedType, "unsupported type")
	ErrTypeMismatch               = sentinel(KindTypeMismatch, "type mismatch")
	ErrInvalidTypeTag             = sentinel(KindInvalidTypeTag, "invalid type tag")
	ErrBufferTooSmall             = sentinel(KindBufferTooSmall, "buffer too small")
	ErrOutOfMemory                = sentinel(KindOutOfMemory, "out of memory")
	ErrEndOfBuffer                = sentinel(KindEndOfBuffer, "unexpected end of buffer")
	ErrRequiredFieldMissing        = sentinel(KindRequiredFieldMissing, "required field missing")
	ErrUnknownField                = sentinel(KindUnknownField, "unknown field")
	ErrFieldTypeMismatch           = sentinel(KindFieldTypeMismatch, "field type mismatch")
	ErrFileNotFound                = sentinel(KindFileNotFound, "file not found")
	ErrFileReadError               = sentinel(KindFileReadError, "file read error")
	ErrFileWriteError              = sentinel(KindFileWriteError, "file write error")
	ErrMappingFailed               = sentinel(KindMappingFailed, "memory mapping failed")
	ErrUnsupportedFormatVersion    = sentinel(KindUnsupportedFormatVersion, "unsupported format version")
	ErrBackwardCompatibilityError = sentinel(KindBackwardCompatibilityError, "backward compatibility error")
	ErrForwardCompatibilityError  = sentinel(KindForwardCompatibilityError, "forward compatibility error")
)

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}

	if e.Field != "" {
		msg = fmt.Sprintf("%s (field=%q)", msg, e.Field)
	}
	if e.Position >= 0 {
		msg = fmt.Sprintf("%s (pos=%d)", msg, e.Position)
	}
	if e.Expected != "" || e.Actual != "" {
		msg = fmt.Sprintf("%s (expected=%s, actual=%s)", msg, e.Expected, e.Actual)
	}

	return msg
}

// Unwrap lets errors.Is(err, zcerr.ErrXxx) match contextualized errors of
// the same Kind, by returning the bare package-level sentinel for e.Kind.
// A sentinel itself unwraps to nil, which ends the chain.
func (e *Error) Unwrap() error {
	s := kindSentinel(e.Kind)
	if s == error(e) {
		return nil
	}

	return s
}

// Is reports whether target is the sentinel for e's Kind, so a
// context-bearing *Error compares equal (via errors.Is) to the matching
// bare sentinel without needing exact struct equality.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}

	return false
}

func kindSentinel(k Kind) error {
	switch k {
	case KindInvalidSchema:
		return ErrInvalidSchema
	case KindSchemaVersionMismatch:
		return ErrSchemaVersionMismatch
	case KindSchemaEvolutionError:
		return ErrSchemaEvolutionError
	case KindIncompatibleSchema:
		return ErrIncompatibleSchema
	case KindInvalidData:
		return ErrInvalidData
	case KindInvalidMagicNumber:
		return ErrInvalidMagicNumber
	case KindCorruptedData:
		return ErrCorruptedData
	case KindChecksumMismatch:
		return ErrChecksumMismatch
	case KindUnsupportedType:
		return ErrUnsupportedType
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindInvalidTypeTag:
		return ErrInvalidTypeTag
	case KindBufferTooSmall:
		return ErrBufferTooSmall
	case KindOutOfMemory:
		return ErrOutOfMemory
	case KindEndOfBuffer:
		return ErrEndOfBuffer
	case KindRequiredFieldMissing:
		return ErrRequiredFieldMissing
	case KindUnknownField:
		return ErrUnknownField
	case KindFieldTypeMismatch:
		return ErrFieldTypeMismatch
	case KindFileNotFound:
		return ErrFileNotFound
	case KindFileReadError:
		return ErrFileReadError
	case KindFileWriteError:
		return ErrFileWriteError
	case KindMappingFailed:
		return ErrMappingFailed
	case KindUnsupportedFormatVersion:
		return ErrUnsupportedFormatVersion
	case KindBackwardCompatibilityError:
		return ErrBackwardCompatibilityError
	case KindForwardCompatibilityError:
		return ErrForwardCompatibilityError
	default:
		return ErrInvalidData
	}
}

// New creates a contextualized *Error for Kind k with the given message.
func New(k Kind, msg string) *Error {
	return &Error{Kind: k, Message: msg, Position: -1}
}

// WithField returns a copy of e with Field set.
func (e *Error) WithField(field string) *Error {
	c := *e
	c.Field = field
	return &c
}

// WithPosition returns a copy of e with Position set.
func (e *Error) WithPosition(pos int) *Error {
	c := *e
	c.Position = pos
	return &c
}

// WithTypes returns a copy of e with Expected/Actual set.
func (e *Error) WithTypes(expected, actual string) *Error {
	c := *e
	c.Expected = expected
	c.Actual = actual
	return &c
}
