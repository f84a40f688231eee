// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/cnf/structhash"
)

// fingerprintVersion is the structhash schema version of Fingerprint.
const fingerprintVersion = 1

// Equal reports whether a and b have the same shape and equal cells at every
// coordinate. Two nil matrices are equal.
// Only this operation needs T to be comparable; see EqualFunc otherwise.
// Complexity: O(r*c).
func Equal[T comparable](a, b *Matrix[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied cell equality.
// The flat buffers are compared in order; by the row-major layout this is the
// same pairing as zipping a.Values() with b.Values().
func EqualFunc[T any](a, b *Matrix[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	defer a.share(ctxEqual)()
	if b != a {
		defer b.share(ctxEqual)()
	}

	return slices.EqualFunc(a.data, b.data, eq)
}

// fingerprint is the hashed projection of a matrix: shape plus cells.
type fingerprint struct {
	Rows int
	Cols int
	Data any
}

// Fingerprint returns a structural hash ("v1_<md5 hex>") of the shape and all
// cells. Equal matrices have equal fingerprints; the shape is part of the
// hash, so 1×4 and 2×2 matrices with the same buffer differ.
// Float and complex cells are hashed with -0 folded into +0, matching ==.
// float32 cells hash by their float64 value.
// Cells are serialized by reflection, so a float field nested in a struct or
// array element is hashed as stored; func and chan elements are not
// meaningful here.
func (m *Matrix[T]) Fingerprint() (string, error) {
	defer m.share(ctxFingerprint)()
	h, err := structhash.Hash(fingerprint{Rows: m.rows, Cols: m.cols, Data: hashCells(m.data)}, fingerprintVersion)
	if err != nil {
		return "", fmt.Errorf("Matrix.%s: %w", ctxFingerprint, err)
	}

	return h, nil
}

// hashCells returns the value structhash serializes for data. Float cells
// have -0 folded into +0. Complex cells become [real, imag] pairs, folded the
// same way, since structhash has no encoding for complex numbers. Other
// element kinds are returned unchanged and data itself is never written.
func hashCells[T any](data []T) any {
	switch kind := reflect.TypeFor[T]().Kind(); kind {
	case reflect.Float32, reflect.Float64:
		out := make([]float64, len(data))
		for i := range data {
			out[i] = unsignedZero(reflect.ValueOf(&data[i]).Elem().Float())
		}
		return out
	case reflect.Complex64, reflect.Complex128:
		out := make([][2]float64, len(data))
		for i := range data {
			c := reflect.ValueOf(&data[i]).Elem().Complex()
			out[i] = [2]float64{unsignedZero(real(c)), unsignedZero(imag(c))}
		}
		return out
	default:
		return data
	}
}

// unsignedZero maps -0 to +0 and returns every other value as is.
func unsignedZero(f float64) float64 {
	if f == 0 {
		return 0
	}

	return f
}
