// Copyright 2026 The drjit-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import "fmt"

// Array is the size-agnostic view shared by the fixed-size array types
// (Array1 through Array4) and DynamicArray. It covers positional
// element access with negative indexing, the runtime form of named
// attribute access, and the shape/length queries.
//
// Entry and SetEntry accept indices in [-Len(), Len()-1]; anything
// else yields an *OutOfBoundsError that reports the caller's original
// index. Attr and SetAttr resolve the x/y/z/w aliases on fixed-size
// arrays and always fail with an *AttributeError on dynamic arrays.
type Array[T Scalar] interface {
	// Len returns the number of entries.
	Len() int

	// Shape returns the array's shape, always a one-element Shape
	// holding Len().
	Shape() Shape

	// Entry returns the entry at index i, which may be negative.
	Entry(i int) (T, error)

	// SetEntry overwrites the entry at index i, which may be negative.
	SetEntry(i int, value T) error

	// Attr returns the entry behind a named alias such as "x".
	Attr(name string) (T, error)

	// SetAttr overwrites the entry behind a named alias such as "x".
	SetAttr(name string, value T) error

	// Data returns a mutable view of the underlying storage.
	Data() []T

	fmt.Stringer
}
