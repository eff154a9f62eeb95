// Package bitpool provides a fixed-capacity index allocator for Go.
//
// Given a capacity N, a Pool hands out integer indices in [0, N) on Acquire
// and takes them back on Release, tracking occupancy with one bit per index.
// An embedded two-level bitmap hierarchy (one summary bit per 32-index data
// word, plus a search cursor) keeps Acquire amortized O(1) instead of a
// linear scan over thousands of slots. Typical uses are dense recycled
// handle spaces: entity identifiers, connection slots, buffer slots, port
// numbers.
//
// # Quick Start
//
//	pool, err := bitpool.New(4096)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id := pool.Acquire() // 0
//	if id < 0 {
//	    // Pool exhausted. Expected outcome, not an error.
//	}
//	pool.Release(id)
//
// Exhaustion returns the sentinel -1 and releasing a stale or garbage handle
// is a silent no-op, keeping both hot paths free of error handling. Only
// construction and checked accessors validate their arguments.
//
// # Interoperability
//
// FromWords builds a pool from word-granular availability bits, and
// FromBitmap / OccupiedBitmap translate between the pool and roaring bitmaps
// of occupied indices at the package boundary.
//
// # Concurrency
//
// A Pool is single-threaded by design: no operation blocks and no internal
// locking exists. Concurrent mutation requires external serialization, for
// example one pool per worker or a mutex around the pool.
package bitpool
