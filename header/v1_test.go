package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/zcerr"
)

func TestV1RoundTrip(t *testing.T) {
	h := V1{TypeTag: tag.I32, DataSize: 4}
	buf := h.Bytes()
	assert.Len(t, buf, V1Size)

	got, err := ParseV1(buf)
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestParseV1Truncated(t *testing.T) {
	h := V1{TypeTag: tag.U8, DataSize: 1}
	buf := h.Bytes()

	_, err := ParseV1(buf[:V1Size-1])
	require.Error(t, err)
	var zerr *zcerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zcerr.KindEndOfBuffer, zerr.Kind)
}

func TestParseV1BadMagic(t *testing.T) {
	h := V1{TypeTag: tag.U8, DataSize: 1}
	buf := h.Bytes()
	buf[0] = 0xFF

	_, err := ParseV1(buf)
	require.Error(t, err)
	var zerr *zcerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zcerr.KindInvalidMagicNumber, zerr.Kind)
}

func TestParseV1WrongFormatVersion(t *testing.T) {
	h := V1{TypeTag: tag.U8, DataSize: 1}
	buf := h.Bytes()
	buf[4] = 9

	_, err := ParseV1(buf)
	require.Error(t, err)
	var zerr *zcerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zcerr.KindUnsupportedFormatVersion, zerr.Kind)
}

func TestParseV1InvalidTypeTag(t *testing.T) {
	h := V1{TypeTag: tag.U8, DataSize: 1}
	buf := h.Bytes()
	buf[6] = 0xFF

	_, err := ParseV1(buf)
	require.Error(t, err)
	var zerr *zcerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zcerr.KindInvalidTypeTag, zerr.Kind)
}
