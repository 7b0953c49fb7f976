// Package hash provides the stable string hash used to derive the schema
// fingerprint written into the v2 header.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes a deterministic 64-bit hash of data. The algorithm (xxHash64)
// is an implementation detail; only determinism across builds and
// platforms is required, which xxHash64 satisfies without needing a fixed
// seed or external state.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
