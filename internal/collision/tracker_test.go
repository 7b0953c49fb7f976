package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTrackNoCollision(t *testing.T) {
	tracker := NewTracker()

	require.False(t, tracker.Track("person.v1", 0xdeadbeef))
	require.False(t, tracker.Track("person.v2", 0xfeedface))
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTrackSameSchemaRepeated(t *testing.T) {
	tracker := NewTracker()

	require.False(t, tracker.Track("person.v1", 0xdeadbeef))
	require.False(t, tracker.Track("person.v1", 0xdeadbeef)) // same pair, not a collision
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTrackCollision(t *testing.T) {
	tracker := NewTracker()

	require.False(t, tracker.Track("person.v1", 0xdeadbeef))
	collided := tracker.Track("order.v3", 0xdeadbeef) // different schema, same fingerprint

	require.True(t, collided)
	require.True(t, tracker.HasCollision())
	require.Equal(t, 1, tracker.Count()) // still one distinct fingerprint
}

func TestReset(t *testing.T) {
	tracker := NewTracker()
	tracker.Track("a", 1)
	tracker.Track("b", 1) // collision

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())

	require.False(t, tracker.Track("c", 2))
}
