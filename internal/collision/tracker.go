// Package collision tracks schema-fingerprint collisions for diagnostic
// purposes. The schema fingerprint is explicitly advisory and weak —
// "hash(name) XOR version" can collide for distinct schemas — so this
// tracker never returns an error; it only records whether a collision was
// observed, for a caller (typically validate.ValidateSchemaFamily) to
// surface as a warning if it chooses to.
package collision

// Tracker records fingerprint -> schema-name associations observed across a
// sequence of schema validations and flags when two distinct schema names
// produce the same fingerprint.
type Tracker struct {
	byFingerprint map[uint32]string // fingerprint -> first schema name seen with it
	seen          []uint32          // ordered list of fingerprints tracked, for Count/order
	hasCollision  bool
}

// NewTracker creates a new, empty fingerprint collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		byFingerprint: make(map[uint32]string),
		seen:          make([]uint32, 0),
	}
}

// Track records that schemaName produced fingerprint. It returns true if
// this observation collides with a previously tracked, differently-named
// schema sharing the same fingerprint. Re-tracking the same (name,
// fingerprint) pair is a no-op, not a collision.
func (t *Tracker) Track(schemaName string, fingerprint uint32) bool {
	existing, exists := t.byFingerprint[fingerprint]
	if !exists {
		t.byFingerprint[fingerprint] = schemaName
		t.seen = append(t.seen, fingerprint)
		return false
	}

	if existing == schemaName {
		return false
	}

	t.hasCollision = true
	return true
}

// HasCollision reports whether any collision has been observed since
// creation or the last Reset.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count returns the number of distinct fingerprints tracked.
func (t *Tracker) Count() int {
	return len(t.seen)
}

// Reset clears all tracked state, preserving the underlying map/slice
// capacity for reuse.
func (t *Tracker) Reset() {
	for k := range t.byFingerprint {
		delete(t.byFingerprint, k)
	}
	t.seen = t.seen[:0]
	t.hasCollision = false
}
