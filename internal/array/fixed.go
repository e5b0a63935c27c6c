// Copyright 2026 The drjit-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import "fmt"

// The fixed-size types below are backed by Go arrays, so their length
// is part of the type. Sizes 1 through 4 alias their leading positions
// to the names x, y, z, w; each size only carries the accessors that
// exist for it (Array3 has X, Y and Z but no W).
//
// Constructors accept either exactly N values (one per position) or a
// single value, which is broadcast to every position. Any other count
// fails with a *SizeError.

// fillFixed populates a fixed-size backing array from constructor
// arguments, applying the single-value broadcast rule.
func fillFixed[T Scalar](dst []T, values []T) error {
	switch len(values) {
	case len(dst):
		copy(dst, values)
	case 1:
		for i := range dst {
			dst[i] = values[0]
		}
	default:
		return &SizeError{Expected: len(dst), Got: len(values)}
	}
	return nil
}

// fixedTypeName names a fixed-size array type for error reporting,
// e.g. "Array3[float32]".
func fixedTypeName[T Scalar](size int) string {
	return fmt.Sprintf("Array%d[%s]", size, dataTypeOf[T]())
}

// Array1 is a fixed-size array of one element, aliased to X.
type Array1[T Scalar] struct {
	data [1]T
}

// NewArray1 constructs an Array1 from a single value.
func NewArray1[T Scalar](values ...T) (*Array1[T], error) {
	a := &Array1[T]{}
	if err := fillFixed(a.data[:], values); err != nil {
		return nil, err
	}
	return a, nil
}

// Len returns the number of entries.
func (a *Array1[T]) Len() int { return 1 }

// Shape returns the array's shape, (1,).
func (a *Array1[T]) Shape() Shape { return Shape{1} }

// Data returns a mutable view of the underlying storage.
func (a *Array1[T]) Data() []T { return a.data[:] }

// Entry returns the entry at index i, which may be negative.
func (a *Array1[T]) Entry(i int) (T, error) { return entryOf(a.data[:], i) }

// SetEntry overwrites the entry at index i, which may be negative.
func (a *Array1[T]) SetEntry(i int, value T) error { return setEntryOf(a.data[:], i, value) }

// Attr returns the entry behind a named alias.
func (a *Array1[T]) Attr(name string) (T, error) {
	return attrOf(fixedTypeName[T](1), name, a.data[:])
}

// SetAttr overwrites the entry behind a named alias.
func (a *Array1[T]) SetAttr(name string, value T) error {
	return setAttrOf(fixedTypeName[T](1), name, a.data[:], value)
}

// X returns entry 0.
func (a *Array1[T]) X() T { return a.data[0] }

// SetX overwrites entry 0.
func (a *Array1[T]) SetX(value T) { a.data[0] = value }

func (a *Array1[T]) String() string { return formatEntries(a.data[:]) }

// Array2 is a fixed-size array of two elements, aliased to X and Y.
type Array2[T Scalar] struct {
	data [2]T
}

// NewArray2 constructs an Array2 from two values, or from one value
// broadcast to both positions.
func NewArray2[T Scalar](values ...T) (*Array2[T], error) {
	a := &Array2[T]{}
	if err := fillFixed(a.data[:], values); err != nil {
		return nil, err
	}
	return a, nil
}

// Len returns the number of entries.
func (a *Array2[T]) Len() int { return 2 }

// Shape returns the array's shape, (2,).
func (a *Array2[T]) Shape() Shape { return Shape{2} }

// Data returns a mutable view of the underlying storage.
func (a *Array2[T]) Data() []T { return a.data[:] }

// Entry returns the entry at index i, which may be negative.
func (a *Array2[T]) Entry(i int) (T, error) { return entryOf(a.data[:], i) }

// SetEntry overwrites the entry at index i, which may be negative.
func (a *Array2[T]) SetEntry(i int, value T) error { return setEntryOf(a.data[:], i, value) }

// Attr returns the entry behind a named alias.
func (a *Array2[T]) Attr(name string) (T, error) {
	return attrOf(fixedTypeName[T](2), name, a.data[:])
}

// SetAttr overwrites the entry behind a named alias.
func (a *Array2[T]) SetAttr(name string, value T) error {
	return setAttrOf(fixedTypeName[T](2), name, a.data[:], value)
}

// X returns entry 0.
func (a *Array2[T]) X() T { return a.data[0] }

// Y returns entry 1.
func (a *Array2[T]) Y() T { return a.data[1] }

// SetX overwrites entry 0.
func (a *Array2[T]) SetX(value T) { a.data[0] = value }

// SetY overwrites entry 1.
func (a *Array2[T]) SetY(value T) { a.data[1] = value }

func (a *Array2[T]) String() string { return formatEntries(a.data[:]) }

// Array3 is a fixed-size array of three elements, aliased to X, Y
// and Z.
type Array3[T Scalar] struct {
	data [3]T
}

// NewArray3 constructs an Array3 from three values, or from one value
// broadcast to all three positions.
func NewArray3[T Scalar](values ...T) (*Array3[T], error) {
	a := &Array3[T]{}
	if err := fillFixed(a.data[:], values); err != nil {
		return nil, err
	}
	return a, nil
}

// Len returns the number of entries.
func (a *Array3[T]) Len() int { return 3 }

// Shape returns the array's shape, (3,).
func (a *Array3[T]) Shape() Shape { return Shape{3} }

// Data returns a mutable view of the underlying storage.
func (a *Array3[T]) Data() []T { return a.data[:] }

// Entry returns the entry at index i, which may be negative.
func (a *Array3[T]) Entry(i int) (T, error) { return entryOf(a.data[:], i) }

// SetEntry overwrites the entry at index i, which may be negative.
func (a *Array3[T]) SetEntry(i int, value T) error { return setEntryOf(a.data[:], i, value) }

// Attr returns the entry behind a named alias.
func (a *Array3[T]) Attr(name string) (T, error) {
	return attrOf(fixedTypeName[T](3), name, a.data[:])
}

// SetAttr overwrites the entry behind a named alias.
func (a *Array3[T]) SetAttr(name string, value T) error {
	return setAttrOf(fixedTypeName[T](3), name, a.data[:], value)
}

// X returns entry 0.
func (a *Array3[T]) X() T { return a.data[0] }

// Y returns entry 1.
func (a *Array3[T]) Y() T { return a.data[1] }

// Z returns entry 2.
func (a *Array3[T]) Z() T { return a.data[2] }

// SetX overwrites entry 0.
func (a *Array3[T]) SetX(value T) { a.data[0] = value }

// SetY overwrites entry 1.
func (a *Array3[T]) SetY(value T) { a.data[1] = value }

// SetZ overwrites entry 2.
func (a *Array3[T]) SetZ(value T) { a.data[2] = value }

func (a *Array3[T]) String() string { return formatEntries(a.data[:]) }

// Array4 is a fixed-size array of four elements, aliased to X, Y, Z
// and W.
type Array4[T Scalar] struct {
	data [4]T
}

// NewArray4 constructs an Array4 from four values, or from one value
// broadcast to all four positions.
func NewArray4[T Scalar](values ...T) (*Array4[T], error) {
	a := &Array4[T]{}
	if err := fillFixed(a.data[:], values); err != nil {
		return nil, err
	}
	return a, nil
}

// Len returns the number of entries.
func (a *Array4[T]) Len() int { return 4 }

// Shape returns the array's shape, (4,).
func (a *Array4[T]) Shape() Shape { return Shape{4} }

// Data returns a mutable view of the underlying storage.
func (a *Array4[T]) Data() []T { return a.data[:] }

// Entry returns the entry at index i, which may be negative.
func (a *Array4[T]) Entry(i int) (T, error) { return entryOf(a.data[:], i) }

// SetEntry overwrites the entry at index i, which may be negative.
func (a *Array4[T]) SetEntry(i int, value T) error { return setEntryOf(a.data[:], i, value) }

// Attr returns the entry behind a named alias.
func (a *Array4[T]) Attr(name string) (T, error) {
	return attrOf(fixedTypeName[T](4), name, a.data[:])
}

// SetAttr overwrites the entry behind a named alias.
func (a *Array4[T]) SetAttr(name string, value T) error {
	return setAttrOf(fixedTypeName[T](4), name, a.data[:], value)
}

// X returns entry 0.
func (a *Array4[T]) X() T { return a.data[0] }

// Y returns entry 1.
func (a *Array4[T]) Y() T { return a.data[1] }

// Z returns entry 2.
func (a *Array4[T]) Z() T { return a.data[2] }

// W returns entry 3.
func (a *Array4[T]) W() T { return a.data[3] }

// SetX overwrites entry 0.
func (a *Array4[T]) SetX(value T) { a.data[0] = value }

// SetY overwrites entry 1.
func (a *Array4[T]) SetY(value T) { a.data[1] = value }

// SetZ overwrites entry 2.
func (a *Array4[T]) SetZ(value T) { a.data[2] = value }

// SetW overwrites entry 3.
func (a *Array4[T]) SetW(value T) { a.data[3] = value }

func (a *Array4[T]) String() string { return formatEntries(a.data[:]) }

// Interface conformance.
var (
	_ Array[float32] = (*Array1[float32])(nil)
	_ Array[float32] = (*Array2[float32])(nil)
	_ Array[float32] = (*Array3[float32])(nil)
	_ Array[float32] = (*Array4[float32])(nil)
)
