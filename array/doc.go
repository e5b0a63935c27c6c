// Copyright 2026 The drjit-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides one-dimensional numeric array types with
// positional and named element access.
//
// # Overview
//
// Two kinds of arrays are available:
//   - Fixed-size arrays (Array1 through Array4), whose length is part
//     of the type. Their leading positions alias to the names x, y, z
//     and w, both as direct accessors (X(), SetY(...)) and through the
//     runtime Attr/SetAttr form.
//   - DynamicArray, whose length is chosen at construction and carried
//     as runtime state. Dynamic arrays expose no named aliases at any
//     length.
//
// # Basic Usage
//
//	v, err := array.NewArray3[float32](1, 2, 3)
//	if err != nil {
//	    // handle constructor arity error
//	}
//	v.SetX(4)
//	last, err := v.Entry(-1) // negative indices count from the end
//
// # Indexing
//
// Entry and SetEntry accept indices in [-Len(), Len()-1]; -1 addresses
// the last entry. An index outside that range fails with an
// *OutOfBoundsError that reports the caller's original index:
//
//	entry -4 is out of bounds (the array is of size 3).
//
// # Named Aliases
//
// A fixed-size array of length N exposes the first N names of the
// sequence x, y, z, w. Assigning any other name (for example "w" on an
// Array3, or "imag" anywhere) fails with an *AttributeError. Dynamic
// arrays reject every name.
//
// # Supported Element Types
//
// The Scalar constraint admits bool, float32, float64, int32, uint32,
// int64 and uint64 elements.
package array
