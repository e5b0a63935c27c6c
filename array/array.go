// Copyright 2026 The drjit-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/jhoydis/drjit/internal/array"
)

// Type aliases for public API

// Scalar is a constraint for supported array element types.
// Supported types: bool, float32, float64, int32, uint32, int64, uint64.
type Scalar = array.Scalar

// Number is the subset of Scalar with ordinary arithmetic, used by
// Arange.
type Number = array.Number

// DataType represents the underlying element type of an array.
type DataType = array.DataType

// Data type constants.
const (
	Bool    DataType = array.Bool
	Float32 DataType = array.Float32
	Float64 DataType = array.Float64
	Int32   DataType = array.Int32
	UInt32  DataType = array.UInt32
	Int64   DataType = array.Int64
	UInt64  DataType = array.UInt64
)

// Shape represents the dimensions of an array. Arrays in this package
// are one-dimensional, so a shape always holds exactly one entry.
type Shape = array.Shape

// Array is the size-agnostic interface implemented by every array type
// in this package.
type Array[T Scalar] = array.Array[T]

// Array1 is a fixed-size array of one element, aliased to X.
type Array1[T Scalar] = array.Array1[T]

// Array2 is a fixed-size array of two elements, aliased to X and Y.
type Array2[T Scalar] = array.Array2[T]

// Array3 is a fixed-size array of three elements, aliased to X, Y
// and Z.
type Array3[T Scalar] = array.Array3[T]

// Array4 is a fixed-size array of four elements, aliased to X, Y, Z
// and W.
type Array4[T Scalar] = array.Array4[T]

// DynamicArray is a one-dimensional array whose length is determined
// at construction time.
type DynamicArray[T Scalar] = array.DynamicArray[T]

// OutOfBoundsError reports an indexed access outside the array.
type OutOfBoundsError = array.OutOfBoundsError

// AttributeError reports access to a named attribute the array type
// does not expose.
type AttributeError = array.AttributeError

// SizeError reports a fixed-size constructor arity mismatch.
type SizeError = array.SizeError

// Creation functions

// NewArray1 constructs an Array1 from a single value.
func NewArray1[T Scalar](values ...T) (*Array1[T], error) {
	return array.NewArray1[T](values...)
}

// NewArray2 constructs an Array2 from two values, or from one value
// broadcast to both positions.
func NewArray2[T Scalar](values ...T) (*Array2[T], error) {
	return array.NewArray2[T](values...)
}

// NewArray3 constructs an Array3 from three values, or from one value
// broadcast to all three positions.
func NewArray3[T Scalar](values ...T) (*Array3[T], error) {
	return array.NewArray3[T](values...)
}

// NewArray4 constructs an Array4 from four values, or from one value
// broadcast to all four positions.
func NewArray4[T Scalar](values ...T) (*Array4[T], error) {
	return array.NewArray4[T](values...)
}

// NewDynamic constructs a dynamic array holding the given values in
// order. A single value produces a length-1 array; it is not broadcast.
func NewDynamic[T Scalar](values ...T) (*DynamicArray[T], error) {
	return array.NewDynamic[T](values...)
}

// Zeros creates a dynamic array of the given size filled with zeros.
func Zeros[T Scalar](size int) (*DynamicArray[T], error) {
	return array.Zeros[T](size)
}

// Full creates a dynamic array of the given size with every entry set
// to value.
func Full[T Scalar](size int, value T) (*DynamicArray[T], error) {
	return array.Full[T](size, value)
}

// FromSlice creates a dynamic array holding a copy of the given values.
func FromSlice[T Scalar](values []T) (*DynamicArray[T], error) {
	return array.FromSlice[T](values)
}

// Arange creates a dynamic array with values from start to end
// (exclusive), stepping by one.
func Arange[T Number](start, end T) (*DynamicArray[T], error) {
	return array.Arange[T](start, end)
}
