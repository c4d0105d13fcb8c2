package copri

import (
	"golang.org/x/sync/errgroup"
)

// CB appends to ret the natural coprime base of s[from..to] (inclusive).
// Algorithm 18.1: it splits the range in half, computes the coprime
// base of each half independently, and merges the two with CBMerge.
//
// When opts.Parallel is set, the two halves are computed concurrently
// via errgroup, each on its own freshly allocated Pool — a Pool has
// exactly one owner and is never shared across goroutines.
// opts.Threads (after normalization) bounds how many branches may be
// concurrently in flight across the whole recursion via a semaphore
// shared by every CB call in the tree, mirroring the original's
// OMP_NUM_THREADS cap but applied over the full recursion rather than
// just the top split.
func CB(pool *Pool, ret *Array, s Array, from, to int, opts *Options) {
	opts = opts.normalized()
	cb(pool, ret, s, from, to, opts, nil)
}

// sem is a counting semaphore limiting concurrently live parallel CB
// branches. nil means parallelism is disabled for this call tree.
type sem chan struct{}

func (s sem) tryAcquire() bool {
	if s == nil {
		return false
	}
	select {
	case s <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s sem) release() {
	<-s
}

func cb(pool *Pool, ret *Array, s Array, from, to int, opts *Options, branches sem) {
	n := to - from
	if n == 0 {
		if s.At(from).Sign() == 0 {
			warnf(opts.logger(), "cb: %v at index %d", ErrZeroInput, from)
			return
		}
		if s.At(from).Cmp(one) != 0 {
			*ret = ret.Add(s.At(from))
		}
		return
	}

	if branches == nil && opts.Parallel {
		branches = make(sem, opts.Threads)
	}

	mid := to - n/2 - 1
	var p, q Array

	if branches.tryAcquire() {
		defer branches.release()

		g := new(errgroup.Group)
		g.Go(func() error {
			childPool := NewPool()
			cb(childPool, &p, s, from, mid, opts, branches)
			return nil
		})
		g.Go(func() error {
			childPool := NewPool()
			cb(childPool, &q, s, mid+1, to, opts, branches)
			return nil
		})
		_ = g.Wait()
	} else {
		cb(pool, &p, s, from, mid, opts, branches)
		cb(pool, &q, s, mid+1, to, opts, branches)
	}

	mergeHalves(pool, ret, p, q, opts)
}

// mergeHalves handles the edge cases that belong to CB rather than
// CBMerge: an empty half is a diagnostic, not a failure, and the
// result degrades to a copy of whichever half is non-empty.
func mergeHalves(pool *Pool, ret *Array, p, q Array, opts *Options) {
	switch {
	case p.Len() > 0 && q.Len() > 0:
		CBMerge(pool, ret, p, q, opts)
	case p.Len() > 0:
		*ret = ret.AppendAll(p)
		warnf(opts.logger(), "cb: q empty, p digest=%s", digest(p))
	case q.Len() > 0:
		*ret = ret.AppendAll(q)
		warnf(opts.logger(), "cb: p empty, q digest=%s", digest(q))
	default:
		warnf(opts.logger(), "cb: p and q both empty")
	}
}

// ArrayCB is the Array-indexed form of CB. Calling it with an empty s
// is a caller error; it logs a diagnostic and leaves ret untouched.
func ArrayCB(pool *Pool, ret *Array, s Array, opts *Options) {
	if s.Len() == 0 {
		warnf(opts.normalized().logger(), "array_cb on empty array: %v", ErrEmptyArray)
		return
	}
	CB(pool, ret, s, 0, s.Len()-1, opts)
}
