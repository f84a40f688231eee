// SPDX-License-Identifier: MIT

package matrix

import "sync/atomic"

// borrowExclusive marks a guard held by one mutable iterator.
const borrowExclusive = -1

// borrowGuard tracks live borrows of a matrix buffer.
// state > 0 counts shared borrows, state == borrowExclusive marks the single
// exclusive borrow, 0 means free. Atomic so that concurrent readers stay
// race-free.
type borrowGuard struct {
	state atomic.Int32
}

func (g *borrowGuard) tryShared() bool {
	for {
		s := g.state.Load()
		if s < 0 {
			return false
		}
		if g.state.CompareAndSwap(s, s+1) {
			return true
		}
	}
}

func (g *borrowGuard) releaseShared() { g.state.Add(-1) }

func (g *borrowGuard) tryExclusive() bool {
	return g.state.CompareAndSwap(0, borrowExclusive)
}

func (g *borrowGuard) releaseExclusive() { g.state.Store(0) }

// exclusive reports whether a mutable iterator is running.
func (g *borrowGuard) exclusive() bool { return g.state.Load() < 0 }

// free reports whether no borrow at all is live.
func (g *borrowGuard) free() bool { return g.state.Load() == 0 }

// share acquires a shared borrow for the named iterator and returns its
// release func. A running mutable iterator makes this a programmer error.
func (m *Matrix[T]) share(method string) func() {
	if !m.guard.tryShared() {
		err := borrowErrorf(method)
		tracer().Errorf("%v", err)
		panic(err)
	}

	return m.guard.releaseShared
}

// lock acquires the exclusive borrow for the named iterator and returns its
// release func. Any running iterator makes this a programmer error.
func (m *Matrix[T]) lock(method string) func() {
	if !m.guard.tryExclusive() {
		err := borrowErrorf(method)
		tracer().Errorf("%v", err)
		panic(err)
	}

	return m.guard.releaseExclusive
}
