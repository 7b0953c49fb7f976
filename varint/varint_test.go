package varint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarintBoundaries(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		want []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"127", 127, []byte{0x7F}},
		{"128", 128, []byte{0x80, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendUint(nil, tt.n)
			assert.Equal(t, tt.want, got)

			v, n, err := ReadUint(got)
			require.NoError(t, err)
			assert.Equal(t, tt.n, v)
			assert.Equal(t, len(tt.want), n)
		})
	}
}

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16384, math.MaxUint32, math.MaxUint64}
	for _, v := range values {
		buf := AppendUint(nil, v)
		got, n, err := ReadUint(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, len(buf), Len(v))
	}
}

func TestVarintTruncated(t *testing.T) {
	buf := []byte{0x80, 0x80, 0x80} // continuation bit set throughout, never terminates
	_, _, err := ReadUint(buf)
	require.Error(t, err)
}

func TestReadUintNarrowerThanEncoded(t *testing.T) {
	buf := AppendUint(nil, 1<<16) // requires u32+
	_, _, err := ReadUint8(buf)
	require.Error(t, err)
	_, _, err = ReadUint16(buf)
	require.Error(t, err)

	v, _, err := ReadUint32(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(1<<16), v)
}

func TestSignedRoundTripNoZigzag(t *testing.T) {
	buf := AppendInt32(nil, -1)
	// -1 as int32 bit-reinterpreted is 0xFFFFFFFF, a wide varint, NOT a
	// single small byte as zigzag would produce.
	assert.Greater(t, len(buf), 1)

	got, n, err := ReadInt32(buf)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), got)
	assert.Equal(t, len(buf), n)
}

func TestFloatBitExactRoundTrip(t *testing.T) {
	values := []float64{0, -0, 1.5, math.Inf(1), math.Inf(-1), math.NaN()}
	for _, f := range values {
		buf := AppendFloat64(nil, f)
		got, n, err := ReadFloat64(buf)
		require.NoError(t, err)
		assert.Equal(t, 8, n)
		assert.Equal(t, math.Float64bits(f), math.Float64bits(got))
	}
}

func TestFloat32BitExactRoundTrip(t *testing.T) {
	f := float32(math.NaN())
	buf := AppendFloat32(nil, f)
	got, n, err := ReadFloat32(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, math.Float32bits(f), math.Float32bits(got))
}

func TestStringEmptyEncodesToSingleZeroByte(t *testing.T) {
	buf := AppendString(nil, "")
	assert.Equal(t, []byte{0x00}, buf)
}

func TestStringRoundTrip(t *testing.T) {
	s := "Hello, 世界! 🌍🚀"
	buf := AppendString(nil, s)
	got, n, err := ReadString(buf)
	require.NoError(t, err)
	assert.Equal(t, s, got)
	assert.Equal(t, len(buf), n)
}

func TestStringViewAliasesBuffer(t *testing.T) {
	s := "borrowed"
	buf := AppendString(nil, s)
	view, _, err := ReadStringView(buf)
	require.NoError(t, err)
	assert.Equal(t, s, string(view))

	// The view must alias buf's backing array, not a copy.
	bufPtr := &buf[len(buf)-len(s)]
	viewPtr := &view[0]
	assert.Same(t, bufPtr, viewPtr)
}

func TestBoolCanonicalAndTolerant(t *testing.T) {
	assert.Equal(t, []byte{0x00}, AppendBool(nil, false))
	assert.Equal(t, []byte{0x01}, AppendBool(nil, true))

	v, n, err := ReadBool([]byte{0x05}) // non-canonical but tolerated as true
	require.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, 1, n)
}

func TestStringFixed32RoundTrip(t *testing.T) {
	s := "legacy"
	buf := AppendStringFixed32(nil, s)
	got, n, err := ReadStringFixed32(buf)
	require.NoError(t, err)
	assert.Equal(t, s, got)
	assert.Equal(t, len(buf), n)
}
