package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/zcerr"
)

func TestV2RoundTrip(t *testing.T) {
	h := V2{
		TypeTag:           tag.Struct,
		SchemaVersion:     3,
		DataSize:          0,
		SchemaFingerprint: 0xABCD1234,
	}
	buf := h.Bytes()

	got, n, err := ParseV2(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, h, got)
}

func TestV2RoundTripZeroValues(t *testing.T) {
	h := V2{TypeTag: tag.Bool}
	buf := h.Bytes()

	got, n, err := ParseV2(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, h, got)
}

func TestV2VariableLengthAllowsTrailingBytes(t *testing.T) {
	h := V2{TypeTag: tag.U32, SchemaVersion: 1, SchemaFingerprint: 42}
	buf := h.Bytes()
	buf = append(buf, 0xDE, 0xAD, 0xBE, 0xEF)

	got, n, err := ParseV2(buf)
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.Less(t, n, len(buf))
}

func TestParseV2Truncated(t *testing.T) {
	_, _, err := ParseV2(Magic[:2])
	require.Error(t, err)
	var zerr *zcerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zcerr.KindEndOfBuffer, zerr.Kind)
}

func TestParseV2BadMagic(t *testing.T) {
	h := V2{TypeTag: tag.U8}
	buf := h.Bytes()
	buf[1] = 0x00

	_, _, err := ParseV2(buf)
	require.Error(t, err)
	var zerr *zcerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zcerr.KindInvalidMagicNumber, zerr.Kind)
}

func TestParseV2WrongFormatVersion(t *testing.T) {
	buf := append([]byte{}, Magic[:]...)
	buf = append(buf, 1) // format_version = 1, varint-encoded
	buf = append(buf, byte(tag.U8))

	_, _, err := ParseV2(buf)
	require.Error(t, err)
	var zerr *zcerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zcerr.KindUnsupportedFormatVersion, zerr.Kind)
}

func TestParseV2InvalidTypeTag(t *testing.T) {
	h := V2{TypeTag: tag.U8}
	buf := h.Bytes()
	buf[5] = 0xFF

	_, _, err := ParseV2(buf)
	require.Error(t, err)
	var zerr *zcerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zcerr.KindInvalidTypeTag, zerr.Kind)
}
