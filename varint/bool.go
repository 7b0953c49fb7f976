package varint

import "github.com/zcrt/zcrt/zcerr"

// AppendBool appends the canonical single-byte encoding of v: 0x00 for
// false, 0x01 for true. Writers must emit these canonical values even
// though readers tolerate any non-zero byte as true.
func AppendBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 0x01)
	}

	return append(buf, 0x00)
}

// ReadBool decodes a single bool byte from the front of buf. Any non-zero
// byte decodes as true (a tolerant read); only writers are held to the
// canonical 0x00/0x01 values.
func ReadBool(buf []byte) (bool, int, error) {
	if len(buf) < 1 {
		return false, 0, zcerr.New(zcerr.KindEndOfBuffer, "bool payload truncated")
	}

	return buf[0] != 0x00, 1, nil
}
