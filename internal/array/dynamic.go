// Copyright 2026 The drjit-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import "fmt"

// DynamicArray is a one-dimensional array whose length is determined
// at construction time and carried as runtime state.
//
// Because the length is not part of the type, dynamic arrays never
// expose the x/y/z/w aliases: Attr and SetAttr fail with an
// *AttributeError at every length, including 1 through 4.
type DynamicArray[T Scalar] struct {
	data []T
}

// NewDynamic constructs a dynamic array holding the given values in
// order. A single value produces a length-1 array; it is not broadcast
// to any larger size. At least one value is required.
func NewDynamic[T Scalar](values ...T) (*DynamicArray[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("dynamic array requires at least one value")
	}
	data := make([]T, len(values))
	copy(data, values)
	return &DynamicArray[T]{data: data}, nil
}

// Len returns the number of entries.
func (a *DynamicArray[T]) Len() int { return len(a.data) }

// Shape returns the array's shape, a one-element Shape holding Len().
func (a *DynamicArray[T]) Shape() Shape { return Shape{len(a.data)} }

// Data returns a mutable view of the underlying storage.
func (a *DynamicArray[T]) Data() []T { return a.data }

// Entry returns the entry at index i, which may be negative.
func (a *DynamicArray[T]) Entry(i int) (T, error) { return entryOf(a.data, i) }

// SetEntry overwrites the entry at index i, which may be negative.
func (a *DynamicArray[T]) SetEntry(i int, value T) error { return setEntryOf(a.data, i, value) }

// typeName names the dynamic array type for error reporting, e.g.
// "DynamicArray[float32]".
func (a *DynamicArray[T]) typeName() string {
	return fmt.Sprintf("DynamicArray[%s]", dataTypeOf[T]())
}

// Attr always fails: dynamic arrays have no named aliases.
func (a *DynamicArray[T]) Attr(name string) (T, error) {
	var zero T
	return zero, &AttributeError{Type: a.typeName(), Attr: name}
}

// SetAttr always fails: dynamic arrays have no named aliases.
func (a *DynamicArray[T]) SetAttr(name string, value T) error {
	return &AttributeError{Type: a.typeName(), Attr: name}
}

func (a *DynamicArray[T]) String() string { return formatEntries(a.data) }

// Interface conformance.
var _ Array[float32] = (*DynamicArray[float32])(nil)
