package tag

// Type is a single-byte discriminant identifying the kind of value that
// follows a field's name in the wire format. Values are stable across
// releases; never renumber an existing constant.
type Type uint8

const (
	Null   Type = 0x00
	Bool   Type = 0x01
	U8     Type = 0x02
	U16    Type = 0x03
	U32    Type = 0x04
	U64    Type = 0x05
	I8     Type = 0x06
	I16    Type = 0x07
	I32    Type = 0x08
	I64    Type = 0x09
	F32    Type = 0x0A
	F64    Type = 0x0B
	String Type = 0x0C
	Array  Type = 0x0D
	Struct Type = 0x0E
)

// maxKnown is the highest assigned Type value; anything above it is reserved.
const maxKnown = Struct

// Valid reports whether t is one of the assigned TypeTag values. Reserved
// values (anything above Struct) are invalid and must fail with
// zcerr.ErrInvalidTypeTag at the call site.
func (t Type) Valid() bool {
	return t <= maxKnown
}

// IsInteger reports whether t is one of the eight fixed-width integer kinds.
func (t Type) IsInteger() bool {
	switch t {
	case U8, U16, U32, U64, I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

// IsUnsigned reports whether t is one of the four unsigned integer kinds.
func (t Type) IsUnsigned() bool {
	switch t {
	case U8, U16, U32, U64:
		return true
	default:
		return false
	}
}

// IsSigned reports whether t is one of the four signed integer kinds.
func (t Type) IsSigned() bool {
	switch t {
	case I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether t is F32 or F64.
func (t Type) IsFloat() bool {
	return t == F32 || t == F64
}

// IsComposite reports whether t is a container kind (Array or Struct) whose
// payload recurses rather than decoding to a single scalar value.
func (t Type) IsComposite() bool {
	return t == Array || t == Struct
}

// Width returns the fixed encoded width in bytes for integer and float
// kinds. It returns 0 for Null, Bool, String, Array, and Struct, whose
// payload lengths are either implicit (1 byte, Bool) or variable.
func (t Type) Width() int {
	switch t {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, F64:
		return 8
	default:
		return 0
	}
}

// String returns the canonical name of the tag.
func (t Type) String() string {
	switch t {
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case U8:
		return "U8"
	case U16:
		return "U16"
	case U32:
		return "U32"
	case U64:
		return "U64"
	case I8:
		return "I8"
	case I16:
		return "I16"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case F32:
		return "F32"
	case F64:
		return "F64"
	case String:
		return "String"
	case Array:
		return "Array"
	case Struct:
		return "Struct"
	default:
		return "Reserved"
	}
}

// widenRank orders integer/float kinds from narrowest to widest within
// their signedness/kind family, used by the reader's width-coercion rule
// (wire-tag must be <= target-tag in this lattice).
var widenRank = map[Type]int{
	U8: 0, U16: 1, U32: 2, U64: 3,
	I8: 0, I16: 1, I32: 2, I64: 3,
	F32: 0, F64: 1,
}

// Widens reports whether a value tagged `from` can be losslessly widened to
// a target tagged `to`: same family (both unsigned, both signed, or both
// float) and from's rank <= to's rank. The reader never truncates — a
// narrower target than the wire provides is not a widening and returns
// false.
func Widens(from, to Type) bool {
	if from == to {
		return true
	}

	switch {
	case from.IsUnsigned() && to.IsUnsigned():
	case from.IsSigned() && to.IsSigned():
	case from.IsFloat() && to.IsFloat():
	default:
		return false
	}

	return widenRank[from] <= widenRank[to]
}
