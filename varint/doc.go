// Package varint implements the primitive wire encodings shared by the v2
// header and the field-tagged record body: base-128 little-endian varints
// for all integer widths, fixed-width little-endian floats, length-prefixed
// strings, and single-byte bools.
//
// Signed integers are bit-reinterpreted as their unsigned counterpart of the
// same width before varint encoding — there is no zigzag transform here.
// That trades away small-negative-number compactness for a simpler,
// symmetric encode/decode pair.
package varint
