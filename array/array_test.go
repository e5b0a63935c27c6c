// Copyright 2026 The drjit-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoydis/drjit/array"
)

// TestIndexStatic mirrors the fixed-size indexing contract: positional
// and named access address the same storage, negative indices count
// from the end, and invalid indices or names fail loudly.
func TestIndexStatic(t *testing.T) {
	v, err := array.NewArray3[float32](1, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, float32(1), v.X())
	assert.Equal(t, float32(2), v.Y())
	assert.Equal(t, float32(3), v.Z())

	v.SetX(4)
	v.SetY(5)
	v.SetZ(6)
	assert.Equal(t, float32(4), v.X())
	assert.Equal(t, float32(5), v.Y())
	assert.Equal(t, float32(6), v.Z())

	for i, want := range []float32{4, 5, 6} {
		got, err := v.Entry(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for i, want := range map[int]float32{-1: 6, -2: 5, -3: 4} {
		got, err := v.Entry(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Entry(%d)", i)
	}

	assert.Equal(t, 3, v.Len())

	err = v.SetAttr("w", 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not have a")

	err = v.SetAttr("imag", 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not have a")

	_, err = v.Entry(3)
	require.Error(t, err)
	assert.EqualError(t, err, "entry 3 is out of bounds (the array is of size 3).")

	_, err = v.Entry(-4)
	require.Error(t, err)
	assert.EqualError(t, err, "entry -4 is out of bounds (the array is of size 3).")

	assert.Equal(t, "(3,)", v.Shape().String())
}

// TestIndexDynamic mirrors the dynamic-size indexing contract: same
// positional behavior as the fixed types, but no named aliases at any
// length.
func TestIndexDynamic(t *testing.T) {
	v, err := array.NewDynamic[float32](1, 2, 3)
	require.NoError(t, err)

	for i, want := range []float32{1, 2, 3} {
		got, err := v.Entry(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	require.NoError(t, v.SetEntry(0, 4))
	require.NoError(t, v.SetEntry(1, 5))
	require.NoError(t, v.SetEntry(2, 6))

	for i, want := range map[int]float32{0: 4, 1: 5, 2: 6, -1: 6, -2: 5, -3: 4} {
		got, err := v.Entry(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Entry(%d)", i)
	}

	assert.Equal(t, 3, v.Len())

	err = v.SetAttr("x", 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not have a")

	err = v.SetAttr("imag", 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not have a")

	_, err = v.Entry(3)
	require.Error(t, err)
	assert.EqualError(t, err, "entry 3 is out of bounds (the array is of size 3).")

	_, err = v.Entry(-4)
	require.Error(t, err)
	assert.EqualError(t, err, "entry -4 is out of bounds (the array is of size 3).")

	assert.Equal(t, "(3,)", v.Shape().String())

	single, err := array.NewDynamic[float32](1)
	require.NoError(t, err)
	assert.Equal(t, "(1,)", single.Shape().String())
}

// TestArrayInterface runs the shared contract over every array variant
// through the Array interface.
func TestArrayInterface(t *testing.T) {
	newArrays := []struct {
		name string
		make func() (array.Array[float32], error)
	}{
		{"Array1", func() (array.Array[float32], error) { return array.NewArray1[float32](1) }},
		{"Array2", func() (array.Array[float32], error) { return array.NewArray2[float32](1, 2) }},
		{"Array3", func() (array.Array[float32], error) { return array.NewArray3[float32](1, 2, 3) }},
		{"Array4", func() (array.Array[float32], error) { return array.NewArray4[float32](1, 2, 3, 4) }},
		{"DynamicArray", func() (array.Array[float32], error) { return array.NewDynamic[float32](1, 2, 3) }},
	}

	for _, tt := range newArrays {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.make()
			require.NoError(t, err)

			n := a.Len()
			require.GreaterOrEqual(t, n, 1)
			assert.True(t, a.Shape().Equal(array.Shape{n}))

			// Every entry is reachable positively and negatively.
			for k := 0; k < n; k++ {
				pos, err := a.Entry(k)
				require.NoError(t, err)
				neg, err := a.Entry(k - n)
				require.NoError(t, err)
				assert.Equal(t, pos, neg, "Entry(%d) vs Entry(%d)", k, k-n)
			}

			// Writes land on exactly one position.
			require.NoError(t, a.SetEntry(-1, 42))
			got, err := a.Entry(n - 1)
			require.NoError(t, err)
			assert.Equal(t, float32(42), got)
			if n > 1 {
				first, err := a.Entry(0)
				require.NoError(t, err)
				assert.Equal(t, float32(1), first)
			}

			// One past either end is rejected with the caller's index.
			_, err = a.Entry(n)
			require.Error(t, err)
			_, err = a.Entry(-n - 1)
			require.Error(t, err)

			var oob *array.OutOfBoundsError
			require.ErrorAs(t, err, &oob)
			assert.Equal(t, -n-1, oob.Entry)
			assert.Equal(t, n, oob.Size)

			// "imag" is never an attribute.
			err = a.SetAttr("imag", 0)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "does not have a")
		})
	}
}

// TestCreationHelpers covers the dynamic-array creation surface.
func TestCreationHelpers(t *testing.T) {
	zeros, err := array.Zeros[float64](3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, zeros.Data())

	full, err := array.Full[int32](2, 9)
	require.NoError(t, err)
	assert.Equal(t, []int32{9, 9}, full.Data())

	ar, err := array.Arange[int64](1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ar.Data())

	fs, err := array.FromSlice([]uint32{7, 8})
	require.NoError(t, err)
	assert.Equal(t, []uint32{7, 8}, fs.Data())
}
