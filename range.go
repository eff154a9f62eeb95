package bitpool

import "math/bits"

// Clear marks every index available and rewinds the cursor to the start.
func (p *Pool) Clear() {
	p.reset()
}

// Fill marks every index occupied, as if the whole pool had been acquired.
// The cursor is parked past the hierarchy so the next Acquire reports
// exhaustion without scanning.
func (p *Pool) Fill() {
	p.store.FillWords(0, p.dataWords+p.hierWords, 0)
	p.cursor = p.hierWords
	p.available = 0
}

// Set writes the availability of a single index and keeps the hierarchy
// consistent incrementally; no Refresh is needed afterwards.
// It panics with *ErrIndexOutOfRange for an out-of-range index.
func (p *Pool) Set(index int, available bool) {
	p.checkIndex(index)

	w := index >> wordShift
	mask := uint32(1) << (index & wordMask)
	old := p.store.Word(w)

	var dw uint32
	if available {
		dw = old | mask
	} else {
		dw = old &^ mask
	}
	if dw == old {
		return
	}

	p.store.SetWord(w, dw)
	if available {
		p.available++
	} else {
		p.available--
	}

	if (old == 0) != (dw == 0) {
		h := w >> wordShift
		hierMask := uint32(1) << (w & wordMask)
		if dw != 0 {
			p.setHierWord(h, p.hierWord(h)|hierMask)
			if h < p.cursor {
				p.cursor = h
			}
		} else {
			p.setHierWord(h, p.hierWord(h)&^hierMask)
		}
	}
}

// Toggle flips the availability of a single index and returns the new state
// (true = available). It panics with *ErrIndexOutOfRange for an
// out-of-range index.
func (p *Pool) Toggle(index int) bool {
	p.checkIndex(index)
	available := !p.store.Get(index)
	p.Set(index, available)
	return available
}

// SetRange batch-sets the availability of the contiguous span
// [start, start+count). The hierarchy is repaired only for data words whose
// emptiness state actually changed, which is what makes this cheaper than
// count calls to Set.
//
// The span must lie within [0, Size); violations return *ErrIndexOutOfRange
// before any mutation. A zero count is a no-op.
func (p *Pool) SetRange(start, count int, available bool) error {
	if start < 0 || start >= p.size {
		return &ErrIndexOutOfRange{Index: start, Size: p.size}
	}
	if count < 0 || start+count > p.size {
		return &ErrIndexOutOfRange{Index: start + count, Size: p.size}
	}
	if count == 0 {
		return nil
	}

	end := start + count // exclusive
	startWord := start >> wordShift
	endWord := (end - 1) >> wordShift

	for w := startWord; w <= endWord; w++ {
		mask := ^uint32(0)
		if w == startWord {
			mask &= ^uint32(0) << (start & wordMask)
		}
		if w == endWord {
			mask &= ^uint32(0) >> (wordMask - (end-1)&wordMask)
		}

		old := p.store.Word(w)
		var dw uint32
		if available {
			dw = old | mask
		} else {
			dw = old &^ mask
		}
		if dw == old {
			continue
		}

		p.store.SetWord(w, dw)
		p.available += bits.OnesCount32(dw) - bits.OnesCount32(old)

		if (old == 0) != (dw == 0) {
			h := w >> wordShift
			hierMask := uint32(1) << (w & wordMask)
			if dw != 0 {
				p.setHierWord(h, p.hierWord(h)|hierMask)
			} else {
				p.setHierWord(h, p.hierWord(h)&^hierMask)
			}
		}
	}

	if available {
		if h := startWord >> wordShift; h < p.cursor {
			p.cursor = h
		}
	}

	return nil
}
