// Copyright 2026 The drjit-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import "fmt"

// Zeros creates a dynamic array of the given size filled with the zero
// value of T.
//
// Example:
//
//	a, err := array.Zeros[float32](3) // [0, 0, 0]
func Zeros[T Scalar](size int) (*DynamicArray[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("invalid size %d (must be >= 1)", size)
	}
	return &DynamicArray[T]{data: make([]T, size)}, nil
}

// Full creates a dynamic array of the given size with every entry set
// to value.
//
// Example:
//
//	a, err := array.Full[float32](3, 3.14) // [3.14, 3.14, 3.14]
func Full[T Scalar](size int, value T) (*DynamicArray[T], error) {
	a, err := Zeros[T](size)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = value
	}
	return a, nil
}

// FromSlice creates a dynamic array holding a copy of the given
// values. The slice is copied, so later mutation of either side does
// not affect the other.
func FromSlice[T Scalar](values []T) (*DynamicArray[T], error) {
	return NewDynamic(values...)
}

// Arange creates a dynamic array with values from start to end
// (exclusive), stepping by one.
//
// Example:
//
//	a, err := array.Arange[int32](0, 4) // [0, 1, 2, 3]
func Arange[T Number](start, end T) (*DynamicArray[T], error) {
	n := int(end) - int(start)
	if n < 1 {
		return nil, fmt.Errorf("end must be greater than start")
	}
	a, err := Zeros[T](n)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = start + T(i)
	}
	return a, nil
}
