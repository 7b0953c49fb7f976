// Package tag defines TypeTag, the single-byte discriminant written before
// every field payload on the wire.
//
// TypeTag is the load-bearing enum for forward/backward compatibility: the
// versioned record reader (package record) decides whether to decode,
// coerce, or skip a field using only the on-wire TypeTag, never the
// reader's static Go type.
package tag
