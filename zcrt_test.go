package zcrt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zcrt/zcrt/schema"
	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/validate"
	"github.com/zcrt/zcrt/view"
)

type account struct {
	ID      uint32
	Name    string
	Balance int64
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := schema.New("account", 1,
		schema.NewField("ID", tag.U32),
		schema.NewField("Name", tag.String),
		schema.NewField("Balance", tag.I64),
	)

	buf := make([]byte, 256)
	in := account{ID: 1, Name: "Alice", Balance: -500}
	n, err := Write(in, buf, s)
	require.NoError(t, err)

	out, err := Read[account](buf[:n], s)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWriteSimpleReadSimpleRoundTrip(t *testing.T) {
	buf := make([]byte, 256)
	in := account{ID: 2, Name: "Bob", Balance: 1000}
	n, err := WriteSimple(in, buf)
	require.NoError(t, err)

	out, err := ReadSimple[account](buf[:n])
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestOpenViewLazyFieldAccess(t *testing.T) {
	s := schema.New("account", 1,
		schema.NewField("ID", tag.U32),
		schema.NewField("Name", tag.String),
		schema.NewField("Balance", tag.I64),
	)

	buf := make([]byte, 256)
	n, err := Write(account{ID: 9, Name: "Carol", Balance: 42}, buf, s)
	require.NoError(t, err)

	acc, err := OpenView(buf[:n])
	require.NoError(t, err)

	res, err := acc.GetField("Name")
	require.NoError(t, err)
	assert.True(t, res.Borrowed)
	assert.Equal(t, "Carol", string(res.Value.([]byte)))
}

func TestOpenFileMapsAndIterates(t *testing.T) {
	s := schema.New("account", 1,
		schema.NewField("ID", tag.U32),
		schema.NewField("Name", tag.String),
		schema.NewField("Balance", tag.I64),
	)

	accounts := []account{
		{ID: 1, Name: "A", Balance: 1},
		{ID: 2, Name: "BB", Balance: 2},
	}

	path := filepath.Join(t.TempDir(), "accounts.zcrt")
	var combined []byte
	for _, a := range accounts {
		buf := make([]byte, 256)
		n, err := Write(a, buf, s)
		require.NoError(t, err)
		combined = append(combined, buf[:n]...)
	}
	require.NoError(t, os.WriteFile(path, combined, 0o644))

	fv, err := OpenFile(path, view.WithReadAhead())
	require.NoError(t, err)
	defer fv.Close()

	var got []account
	for _, acc := range fv.Records().All() {
		v, err := view.Get[account](acc, s)
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, accounts, got)
}

func TestEvolutionCompatibleAndValidated(t *testing.T) {
	v1 := schema.New("account", 1,
		schema.NewField("ID", tag.U32),
		schema.NewField("Name", tag.String),
	)
	v2 := schema.New("account", 2,
		schema.NewField("ID", tag.U32),
		schema.NewField("Name", tag.String),
		schema.NewField("Balance", tag.I64).WithDefault("0").WithAddedIn(2),
	)

	assert.True(t, validate.ValidateSchema(v1).Valid())
	assert.True(t, validate.ValidateSchema(v2).Valid())
	assert.True(t, validate.CheckCompatibility(v1, v2).Compatible())
}
