// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.
//
// Notes:
//   - Shape policy: the public constructors reject zero-sized dimensions by
//     default, mirroring NewDense. WithEmptyShape opts into 0×N, N×0 and 0×0
//     matrices; every constructor applies the same rule.
//   - Options are carried by the matrix and preserved by Clone.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultAllowEmptyShape controls whether rows==0 or cols==0 is a legal shape.
// false ⇒ ErrBadShape for any zero dimension.
const DefaultAllowEmptyShape = false

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	allowEmpty bool // DefaultAllowEmptyShape
}

// WithEmptyShape accepts degenerate shapes with rows==0 or cols==0.
// Behavior highlights:
//   - Negative dimensions are still rejected with ErrBadShape.
//   - An empty matrix has Len()==0; Values/All/ValuesMut/AllMut yield nothing.
//   - FromRows with no rows at all still fails with ErrEmptyInput.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEmptyShape() Option {
	return func(o *Options) { o.allowEmpty = true }
}

// WithStrictShape restores the default policy (zero dimensions rejected).
// Useful when composing option lists where a later setter must win.
func WithStrictShape() Option {
	return func(o *Options) { o.allowEmpty = false }
}

// AllowEmptyShape reports whether zero-sized dimensions are accepted.
func (o Options) AllowEmptyShape() bool { return o.allowEmpty }

// gatherOptions applies user setters over the documented defaults.
// nil setters are skipped; later setters win.
func gatherOptions(user ...Option) Options {
	o := Options{
		allowEmpty: DefaultAllowEmptyShape,
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
