package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zcrt/zcrt/schema"
	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/zcerr"
)

func TestSimpleWriteReadInt32(t *testing.T) {
	buf := make([]byte, 64)
	n, err := SimpleWrite(int32(42), buf)
	require.NoError(t, err)
	assert.Equal(t, 15, n)
	assert.Equal(t, []byte{0x2A, 0x00, 0x00, 0x00}, buf[11:15])

	got, err := SimpleRead[int32](buf[:n])
	require.NoError(t, err)
	assert.Equal(t, int32(42), got)
}

func TestSimpleWriteReadUnicodeString(t *testing.T) {
	s := "Hello, 世界! 🌍🚀"
	buf := make([]byte, 128)
	n, err := SimpleWrite(s, buf)
	require.NoError(t, err)

	got, err := SimpleRead[string](buf[:n])
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

type simpleStruct struct {
	ID   uint32
	Name string
}

func TestSimpleWriteReadStruct(t *testing.T) {
	v := simpleStruct{ID: 7, Name: "alice"}
	buf := make([]byte, 256)
	n, err := SimpleWrite(v, buf)
	require.NoError(t, err)

	got, err := SimpleRead[simpleStruct](buf[:n])
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

type PersonV1 struct {
	ID   uint32
	Name string
}

type PersonV2 struct {
	ID    uint32
	Name  string
	Age   uint32
	Email string
}

func TestForwardCompatEvolution(t *testing.T) {
	schemaV1 := schema.New("person", 1,
		schema.NewField("ID", tag.U32),
		schema.NewField("Name", tag.String),
	)

	buf := make([]byte, 256)
	n, err := Write(PersonV1{ID: 123, Name: "Alice"}, buf, schemaV1)
	require.NoError(t, err)

	schemaV2 := schema.New("person", 2,
		schema.NewField("ID", tag.U32),
		schema.NewField("Name", tag.String),
		schema.NewField("Age", tag.U32).WithDefault("0"),
		schema.NewField("Email", tag.String).WithDefault(""),
	)

	got, err := Read[PersonV2](buf[:n], schemaV2)
	require.NoError(t, err)
	assert.Equal(t, PersonV2{ID: 123, Name: "Alice", Age: 0, Email: ""}, got)
}

type personWithObsolete struct {
	ID   uint32
	Name string
}

func TestSkipUnknown(t *testing.T) {
	writerSchema := schema.New("person", 1,
		schema.NewField("ID", tag.U32),
		schema.NewField("Name", tag.String),
		schema.NewField("Obsolete", tag.String),
	)

	type withObsolete struct {
		ID       uint32
		Name     string
		Obsolete string
	}

	buf := make([]byte, 256)
	n, err := Write(withObsolete{ID: 1, Name: "Bob", Obsolete: "drop me"}, buf, writerSchema)
	require.NoError(t, err)

	readerSchema := schema.New("person", 1,
		schema.NewField("ID", tag.U32),
		schema.NewField("Name", tag.String),
	)

	got, err := Read[personWithObsolete](buf[:n], readerSchema)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), got.ID)
	assert.Equal(t, "Bob", got.Name)
}

func TestWriteBufferTooSmall(t *testing.T) {
	s := schema.New("s", 1, schema.NewField("Value", tag.String))
	buf := make([]byte, 4)

	type holder struct {
		Value string
	}

	_, err := Write(holder{Value: "This string is definitely too large for the buffer"}, buf, s)
	require.Error(t, err)

	var zerr *zcerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zcerr.KindBufferTooSmall, zerr.Kind)
}

func TestRequiredFieldMissingFailsRead(t *testing.T) {
	type onlyID struct {
		ID uint32
	}

	writerSchema := schema.New("s", 1, schema.NewField("ID", tag.U32))
	buf := make([]byte, 64)
	n, err := Write(onlyID{ID: 1}, buf, writerSchema)
	require.NoError(t, err)

	type withRequired struct {
		ID    uint32
		Count uint32
	}

	readerSchema := schema.New("s", 1,
		schema.NewField("ID", tag.U32),
		schema.NewField("Count", tag.U32),
	)

	_, err = Read[withRequired](buf[:n], readerSchema)
	require.Error(t, err)
	var zerr *zcerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zcerr.KindRequiredFieldMissing, zerr.Kind)
}

func TestWidthCoercionWidensOnRead(t *testing.T) {
	type narrow struct {
		Count uint8
	}
	type wide struct {
		Count uint32
	}

	s := schema.New("s", 1, schema.NewField("Count", tag.U8))
	buf := make([]byte, 64)
	n, err := Write(narrow{Count: 200}, buf, s)
	require.NoError(t, err)

	got, err := Read[wide](buf[:n], s)
	require.NoError(t, err)
	assert.Equal(t, uint32(200), got.Count)
}

func TestWidthCoercionRejectsNarrowing(t *testing.T) {
	type wide struct {
		Count uint32
	}
	type narrow struct {
		Count uint8
	}

	s := schema.New("s", 1, schema.NewField("Count", tag.U32))
	buf := make([]byte, 64)
	n, err := Write(wide{Count: 1000}, buf, s)
	require.NoError(t, err)

	_, err = Read[narrow](buf[:n], s)
	require.Error(t, err)
	var zerr *zcerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zcerr.KindFieldTypeMismatch, zerr.Kind)
}

func TestArrayRoundTrip(t *testing.T) {
	type withArray struct {
		Values []uint32
	}

	s := schema.New("s", 1, schema.NewField("Values", tag.Array))
	buf := make([]byte, 256)
	v := withArray{Values: []uint32{1, 2, 3, 4}}
	n, err := Write(v, buf, s)
	require.NoError(t, err)

	got, err := Read[withArray](buf[:n], s)
	require.NoError(t, err)
	assert.Equal(t, v.Values, got.Values)
}

func TestNestedStructRoundTrip(t *testing.T) {
	type inner struct {
		X uint32
	}
	type outer struct {
		Name  string
		Inner inner
	}

	s := schema.New("s", 1,
		schema.NewField("Name", tag.String),
		schema.NewField("Inner", tag.Struct),
	)
	buf := make([]byte, 256)
	v := outer{Name: "n", Inner: inner{X: 9}}
	n, err := Write(v, buf, s)
	require.NoError(t, err)

	got, err := Read[outer](buf[:n], s)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}
