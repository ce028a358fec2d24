package symbols

import (
	"errors"
	"testing"

	"github.com/lumenlang/lumen/internal/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAddLookup(t *testing.T) {
	tbl := NewTable()
	nat := term.NewSort(0)

	require.NoError(t, tbl.Add(Object{Name: "Nat", Type: nat}))
	obj, err := tbl.Lookup("Nat")
	require.NoError(t, err)
	assert.True(t, obj.HasType())
	assert.False(t, obj.HasValue())
	assert.Same(t, nat, obj.Type)
	assert.Equal(t, 1, tbl.Len())
}

func TestTableDuplicate(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Add(Object{Name: "Nat", Type: term.NewSort(0)}))

	err := tbl.Add(Object{Name: "Nat", Type: term.NewSort(1)})
	var dup *DuplicateSymbolError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "Nat", dup.Name)

	assert.Panics(t, func() { tbl.MustAdd(Object{Name: "Nat"}) })
}

func TestTableUnknown(t *testing.T) {
	tbl := NewTable()
	_, err := tbl.Lookup("missing")
	var unknown *UnknownConstantError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "missing", unknown.Name)
}

func TestObjectWithoutType(t *testing.T) {
	tbl := NewTable()
	tbl.MustAdd(Object{Name: "opaque"})
	obj, err := tbl.Lookup("opaque")
	require.NoError(t, err)
	assert.False(t, obj.HasType())
}
