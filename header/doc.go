// Package header defines the two on-wire header layouts: the legacy v1
// fixed-width 11-byte header and the v2 varint-framed header.
//
// The two are deliberately kept as distinct types with no shared
// byte-offset logic — conflating them silently turns a v1 buffer into a
// garbage v2 parse or vice versa.
package header
