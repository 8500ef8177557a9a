// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hemesh/core"
)

func TestDataset_Accessors(t *testing.T) {
	t.Parallel()

	ds := core.NewDataset(3)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 0, core.NewDataset(-5).Len())

	require.NoError(t, ds.SetFloats("x", []float64{1, 2, 3}))
	require.NoError(t, ds.SetInts("srce", []int{0, 1, 2}))
	require.NoError(t, ds.SetBools("is_alive", []bool{true, false, true}))

	assert.True(t, ds.Has("x"))
	assert.False(t, ds.Has("y"))
	assert.Equal(t, []string{"is_alive", "srce", "x"}, ds.Names())

	xs, err := ds.Floats("x")
	require.NoError(t, err)
	assert.Equal(t, core.FloatColumn{1, 2, 3}, xs)

	col, err := ds.Column("srce")
	require.NoError(t, err)
	assert.Equal(t, 3, col.Len())

	// Accessors hand out the live backing slice, not a copy.
	xs[1] = 42
	again, err := ds.Floats("x")
	require.NoError(t, err)
	assert.Equal(t, 42.0, again[1])
}

func TestDataset_AccessorErrors(t *testing.T) {
	t.Parallel()

	ds := core.NewDataset(2)
	require.NoError(t, ds.SetInts("srce", []int{0, 1}))

	_, err := ds.Floats("missing")
	assert.ErrorIs(t, err, core.ErrColumnMissing)
	_, err = ds.Column("missing")
	assert.ErrorIs(t, err, core.ErrColumnMissing)

	_, err = ds.Floats("srce")
	assert.ErrorIs(t, err, core.ErrColumnType)
	_, err = ds.Bools("srce")
	assert.ErrorIs(t, err, core.ErrColumnType)

	assert.ErrorIs(t, ds.SetFloats("x", []float64{1}), core.ErrColumnLength)
	assert.ErrorIs(t, ds.SetInts("trgt", []int{1, 2, 3}), core.ErrColumnLength)
	assert.ErrorIs(t, ds.SetBools("ok", nil), core.ErrColumnLength)
}

func TestDataset_EnsureColumn(t *testing.T) {
	t.Parallel()

	ds := core.NewDataset(3)

	require.NoError(t, ds.EnsureColumn("area", 1.5, false))
	areas, err := ds.Floats("area")
	require.NoError(t, err)
	assert.Equal(t, core.FloatColumn{1.5, 1.5, 1.5}, areas)

	require.NoError(t, ds.EnsureColumn("num_sides", 6, false))
	sides, err := ds.Ints("num_sides")
	require.NoError(t, err)
	assert.Equal(t, core.IntColumn{6, 6, 6}, sides)

	require.NoError(t, ds.EnsureColumn("is_alive", true, false))
	alive, err := ds.Bools("is_alive")
	require.NoError(t, err)
	assert.Equal(t, core.BoolColumn{true, true, true}, alive)

	// Existing values survive without reset and are overwritten with it.
	areas[0] = 9
	require.NoError(t, ds.EnsureColumn("area", 1.5, false))
	kept, err := ds.Floats("area")
	require.NoError(t, err)
	assert.Equal(t, 9.0, kept[0])

	require.NoError(t, ds.EnsureColumn("area", 1.5, true))
	fresh, err := ds.Floats("area")
	require.NoError(t, err)
	assert.Equal(t, core.FloatColumn{1.5, 1.5, 1.5}, fresh)

	assert.ErrorIs(t, ds.EnsureColumn("name", "tissue", false), core.ErrDefaultType)
}

func TestDataset_Drop(t *testing.T) {
	t.Parallel()

	ds := core.NewDataset(1)
	require.NoError(t, ds.SetFloats("x", []float64{0}))
	ds.Drop("x")
	assert.False(t, ds.Has("x"))
	ds.Drop("x") // absent, a no-op
}
