// Copyright 2026 The drjit-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"fmt"
	"strings"
)

// resolveEntry maps a possibly-negative caller index onto [0, size).
// Negative indices count from the end: -1 is the last entry, -size the
// first. The returned error carries the caller's original index, not
// the resolved position.
func resolveEntry(i, size int) (int, error) {
	r := i
	if r < 0 {
		r += size
	}
	if r < 0 || r >= size {
		return 0, &OutOfBoundsError{Entry: i, Size: size}
	}
	return r, nil
}

// entryOf reads the entry at a possibly-negative index.
func entryOf[T Scalar](data []T, i int) (T, error) {
	r, err := resolveEntry(i, len(data))
	if err != nil {
		var zero T
		return zero, err
	}
	return data[r], nil
}

// setEntryOf overwrites the entry at a possibly-negative index.
// No other entry is affected.
func setEntryOf[T Scalar](data []T, i int, value T) error {
	r, err := resolveEntry(i, len(data))
	if err != nil {
		return err
	}
	data[r] = value
	return nil
}

// attrNames is the alias sequence for small fixed-size arrays: the
// first N names address positions 0..N-1 of an array of size N <= 4.
var attrNames = [4]string{"x", "y", "z", "w"}

// attrIndex resolves a named alias to its position for an array of the
// given size. Names past the array's size are not aliases.
func attrIndex(name string, size int) (int, bool) {
	if size > len(attrNames) {
		size = len(attrNames)
	}
	for k := 0; k < size; k++ {
		if attrNames[k] == name {
			return k, true
		}
	}
	return 0, false
}

// attrOf reads the entry behind a named alias.
func attrOf[T Scalar](typeName, name string, data []T) (T, error) {
	k, ok := attrIndex(name, len(data))
	if !ok {
		var zero T
		return zero, &AttributeError{Type: typeName, Attr: name}
	}
	return data[k], nil
}

// setAttrOf overwrites the entry behind a named alias.
func setAttrOf[T Scalar](typeName, name string, data []T, value T) error {
	k, ok := attrIndex(name, len(data))
	if !ok {
		return &AttributeError{Type: typeName, Attr: name}
	}
	data[k] = value
	return nil
}

// formatEntries renders array contents in bracket notation, e.g.
// "[1, 2, 3]".
func formatEntries[T Scalar](data []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}
