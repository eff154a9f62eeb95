package bitpool

import (
	"iter"
	"math/bits"
)

// AvailableIndices returns a lazy, restartable iterator over every available
// index in ascending order.
func (p *Pool) AvailableIndices() iter.Seq[int] {
	return p.Indices(true, 0, p.size)
}

// OccupiedIndices returns a lazy, restartable iterator over every occupied
// index in ascending order.
func (p *Pool) OccupiedIndices() iter.Seq[int] {
	return p.Indices(false, 0, p.size)
}

// Indices returns a lazy, restartable iterator over the indices in the
// half-open range [start, end) whose availability matches available, in
// ascending order. The range is clamped to [0, Size); an empty or inverted
// range yields nothing.
//
// There is no snapshot isolation: mutating the pool mid-iteration yields
// unspecified results for positions not yet visited.
func (p *Pool) Indices(available bool, start, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		lo := max(start, 0)
		hi := min(end, p.size)
		if lo >= hi {
			return
		}

		startWord := lo >> wordShift
		endWord := (hi - 1) >> wordShift

		for w := startWord; w <= endWord; w++ {
			dw := p.store.Word(w)
			if !available {
				dw = ^dw
			}

			// Mask off positions outside [lo, hi).
			if w == startWord {
				dw &= ^uint32(0) << (lo & wordMask)
			}
			if w == endWord {
				dw &= ^uint32(0) >> (wordMask - (hi-1)&wordMask)
			}

			for dw != 0 {
				bit := bits.TrailingZeros32(dw)
				if !yield(w*wordBits + bit) {
					return
				}
				dw &= dw - 1
			}
		}
	}
}
