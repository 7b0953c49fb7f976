package view

import (
	"github.com/zcrt/zcrt/header"
	"github.com/zcrt/zcrt/record"
	"github.com/zcrt/zcrt/schema"
	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/varint"
	"github.com/zcrt/zcrt/zcerr"
)

// Accessor is a lightweight cursor over a single encoded record. It parses
// the header on construction and defers body materialization until Get or
// GetField is called.
//
// Both wire formats are accepted; v1 records carry no per-field wire tags,
// so GetField — which walks fields by name without a target type — only
// works against a v2 record.
type Accessor struct {
	buf        []byte
	isV1       bool
	v1         header.V1
	h          header.V2
	bodyOffset int
}

// NewAccessor parses buf's header — trying v1 first, then v2 — and returns
// an Accessor positioned at the start of the body. buf is borrowed for the
// Accessor's entire lifetime — the accessor never copies it.
func NewAccessor(buf []byte) (*Accessor, error) {
	if v1, err := header.ParseV1(buf); err == nil {
		return &Accessor{buf: buf, isV1: true, v1: v1, bodyOffset: header.V1Size}, nil
	}

	h, n, err := header.ParseV2(buf)
	if err != nil {
		return nil, err
	}

	return &Accessor{buf: buf, h: h, bodyOffset: n}, nil
}

// IsV1 reports whether this Accessor is positioned over a legacy,
// fixed-width v1 record rather than a versioned v2 one.
func (a *Accessor) IsV1() bool {
	return a.isV1
}

// Header returns the parsed v2 header. Calling it on a v1 Accessor panics;
// check IsV1 first.
func (a *Accessor) Header() header.V2 {
	if a.isV1 {
		panic("view: Header called on a v1 Accessor")
	}

	return a.h
}

// Body returns the raw, unparsed body slice (aliasing the input buffer).
func (a *Accessor) Body() []byte {
	return a.buf[a.bodyOffset:]
}

// BytesConsumed returns the total length of the header plus body for this
// record. For v2 it walks the body's own self-describing structure rather
// than trusting the header's reserved data_size slot — this is what the
// v2-only multi-record FileIterator uses to find the next record. v1
// bodies carry no self-description, so a standalone v1 record is assumed
// to occupy the rest of buf; only v2 defines concatenated multi-record
// framing.
func (a *Accessor) BytesConsumed() (int, error) {
	if a.isV1 {
		return len(a.buf), nil
	}

	bodyN, err := record.SkipValue(a.Body(), a.h.TypeTag)
	if err != nil {
		return 0, err
	}

	return a.bodyOffset + bodyN, nil
}

// Get materializes the whole record as a T by calling record.Read (or, for
// a v1 Accessor, record.SimpleRead) on the Accessor's buffer; that call
// parses the header again.
func Get[T any](a *Accessor, s *schema.Schema) (T, error) {
	if a.isV1 {
		return record.SimpleRead[T](a.buf)
	}

	return record.Read[T](a.buf, s)
}

// FieldResult is the return value of GetField: a field's materialized
// value plus whether it aliases the input buffer.
type FieldResult struct {
	Value    any
	Borrowed bool
}

// GetField walks the body, skipping sibling fields without materializing
// them, and returns the named field's value. String payloads come back as
// a borrowed []byte slice aliasing the input buffer (Borrowed=true); every
// other kind is copied into an owned Go value.
func (a *Accessor) GetField(name string) (FieldResult, error) {
	if a.isV1 {
		return FieldResult{}, zcerr.New(zcerr.KindUnsupportedType, "GetField requires a v2 record; v1 bodies carry no per-field wire tags")
	}

	if a.h.TypeTag != tag.Struct {
		return FieldResult{}, zcerr.New(zcerr.KindUnsupportedType, "GetField requires a struct-typed record")
	}

	buf := a.Body()

	count, n, err := varint.ReadUint(buf)
	if err != nil {
		return FieldResult{}, err
	}
	pos := n

	for i := uint64(0); i < count; i++ {
		nameLen, nlN, err := varint.ReadUint(buf[pos:])
		if err != nil {
			return FieldResult{}, err
		}
		pos += nlN

		end := pos + int(nameLen)
		if end < pos || end > len(buf) {
			return FieldResult{}, zcerr.New(zcerr.KindEndOfBuffer, "field name truncated")
		}
		wireName := string(buf[pos:end])
		pos = end

		if pos >= len(buf) {
			return FieldResult{}, zcerr.New(zcerr.KindEndOfBuffer, "field type tag truncated")
		}
		wireTag := tag.Type(buf[pos])
		if !wireTag.Valid() {
			return FieldResult{}, zcerr.New(zcerr.KindInvalidTypeTag, "reserved type tag")
		}
		pos++

		if wireName != name {
			skipN, err := record.SkipValue(buf[pos:], wireTag)
			if err != nil {
				return FieldResult{}, err
			}
			pos += skipN
			continue
		}

		value, borrowed, _, err := decodeFieldValue(buf[pos:], wireTag)
		if err != nil {
			return FieldResult{}, err
		}

		return FieldResult{Value: value, Borrowed: borrowed}, nil
	}

	return FieldResult{}, zcerr.New(zcerr.KindUnknownField, "field not present on wire").WithField(name)
}
