// Copyright 2026 The drjit-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the core one-dimensional array types for drjit-go.
package array

// Scalar is a constraint for supported array element types.
// It uses Go generics to ensure compile-time type safety.
type Scalar interface {
	~bool | ~float32 | ~float64 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Number is the subset of Scalar with ordinary arithmetic, used by
// creation helpers such as Arange that step through a value range.
type Number interface {
	~float32 | ~float64 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// DataType represents runtime type information for arrays.
type DataType int

// Supported element types.
const (
	Bool DataType = iota
	Float32
	Float64
	Int32
	UInt32
	Int64
	UInt64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool:
		return 1
	case Float32, Int32, UInt32:
		return 4
	case Float64, Int64, UInt64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case UInt32:
		return "uint32"
	case Int64:
		return "int64"
	case UInt64:
		return "uint64"
	default:
		return "unknown"
	}
}

// dataTypeOf infers the DataType for a generic element type T.
func dataTypeOf[T Scalar]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case bool:
		return Bool
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case uint32:
		return UInt32
	case int64:
		return Int64
	case uint64:
		return UInt64
	default:
		panic("unsupported type")
	}
}
