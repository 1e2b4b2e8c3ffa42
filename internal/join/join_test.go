package join

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   string
	Name string
}

func TestIndexAndLookup(t *testing.T) {
	rows := []row{
		{ID: "a", Name: "first"},
		{ID: "b", Name: "second"},
	}

	idx := Index(rows, func(r *row) string { return r.ID })

	fk := "b"
	got := Lookup(idx, &fk)
	require.NotNil(t, got)
	assert.Equal(t, "second", got.Name)
}

func TestLookupMissingParent(t *testing.T) {
	idx := Index([]row{{ID: "a"}}, func(r *row) string { return r.ID })

	fk := "zzz"
	assert.Nil(t, Lookup(idx, &fk))
}

func TestLookupNilAndEmptyKey(t *testing.T) {
	idx := Index([]row{{ID: ""}}, func(r *row) string { return r.ID })

	assert.Nil(t, Lookup(idx, nil))

	empty := ""
	assert.Nil(t, Lookup(idx, &empty))
}

func TestLookupID(t *testing.T) {
	idx := Index([]row{{ID: "a", Name: "first"}}, func(r *row) string { return r.ID })

	got := LookupID(idx, "a")
	require.NotNil(t, got)
	assert.Equal(t, "first", got.Name)

	assert.Nil(t, LookupID(idx, ""))
	assert.Nil(t, LookupID(idx, "missing"))
}

func TestIndexPointsIntoBackingSlice(t *testing.T) {
	rows := []row{{ID: "a", Name: "before"}}
	idx := Index(rows, func(r *row) string { return r.ID })

	rows[0].Name = "after"
	assert.Equal(t, "after", idx["a"].Name)
}
