// Copyright 2026 The drjit-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import "fmt"

// OutOfBoundsError reports an indexed access whose resolved position
// lies outside the array. Entry is the caller-supplied index, before
// negative-index resolution; the valid range is [-Size, Size-1].
type OutOfBoundsError struct {
	Entry int
	Size  int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("entry %d is out of bounds (the array is of size %d).", e.Entry, e.Size)
}

// AttributeError reports access to a named attribute that the array
// type does not expose. Dynamic arrays expose no named attributes;
// fixed-size arrays expose the first Len() names of x, y, z, w.
type AttributeError struct {
	Type string
	Attr string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%s does not have a %q attribute", e.Type, e.Attr)
}

// SizeError reports a fixed-size constructor called with an argument
// count that is neither the array's size nor one.
type SizeError struct {
	Expected int
	Got      int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("Input has the wrong size (expected %d elements, got %d).", e.Expected, e.Got)
}
