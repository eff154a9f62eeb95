package bitpool

import (
	"fmt"
	"log/slog"
	"math/bits"

	"github.com/hupe1980/bitpool/internal/bitvec"
)

const (
	wordBits  = bitvec.WordBits
	wordMask  = wordBits - 1
	wordShift = 5
)

// maxDataWords is the largest data-zone word count for which data zone plus
// hierarchy zone still fit into the storage primitive's addressable limit:
// D + ceil(D/32) <= bitvec.MaxWords.
const maxDataWords = (bitvec.MaxWords - 1) * wordBits / (wordBits + 1)

// MaxPoolSize is the largest capacity a Pool can be constructed with.
const MaxPoolSize = maxDataWords * wordBits

// Pool is a fixed-capacity index allocator handing out integers in [0, Size).
//
// Occupancy is tracked with one bit per index (set = available) in a data
// zone, summarized by a hierarchy zone carrying one bit per data word
// (set = that word has at least one available bit). A cursor into the
// hierarchy zone makes forward search amortized O(1); it is a safe lower
// bound on the first summarized word with availability, never authoritative.
//
// Both zones share one contiguous word store: data words occupy
// [0, dataWords), hierarchy words occupy [dataWords, dataWords+hierWords).
//
// A Pool is not safe for concurrent mutation; callers requiring shared use
// must serialize externally.
type Pool struct {
	store     *bitvec.Vector
	size      int // capacity N
	dataWords int // D = ceil(N/32)
	hierWords int // H = ceil(D/32)
	cursor    int // hierarchy word index, hierWords means "search from scratch"
	available int

	logger  *slog.Logger
	metrics MetricsCollector
}

// New creates a Pool of the given capacity with every index available.
//
// capacity must be in [1, MaxPoolSize]; violations return *ErrInvalidCapacity
// before any storage is allocated.
func New(capacity int, opts ...Option) (*Pool, error) {
	if capacity <= 0 || capacity > MaxPoolSize {
		return nil, &ErrInvalidCapacity{Capacity: capacity}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dataWords := (capacity + wordMask) / wordBits
	hierWords := (dataWords + wordMask) / wordBits

	p := &Pool{
		store:     bitvec.New(dataWords + hierWords),
		size:      capacity,
		dataWords: dataWords,
		hierWords: hierWords,
		logger:    o.logger,
		metrics:   o.metricsCollector,
	}
	p.reset()

	return p, nil
}

// FromWords creates a Pool of the given capacity from per-index availability
// words: bit j of words[k] governs index k*32+j, a set bit leaves the index
// available, a clear bit marks it occupied. Indices not covered by words
// remain available.
//
// len(words)*32 must not exceed capacity (*ErrCapacityTooSmall otherwise),
// so every input bit governs an in-range index. The convention is
// word-granular: Words() produces a slice that round-trips through FromWords.
func FromWords(words []uint32, capacity int, opts ...Option) (*Pool, error) {
	if capacity <= 0 || capacity > MaxPoolSize {
		return nil, &ErrInvalidCapacity{Capacity: capacity}
	}
	if len(words)*wordBits > capacity {
		return nil, &ErrCapacityTooSmall{Capacity: capacity, Words: len(words)}
	}

	p, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}

	// This path does not maintain the hierarchy incrementally; write the
	// data zone, then rebuild.
	for k, word := range words {
		p.store.SetWord(k, word)
	}
	p.rebuild()

	return p, nil
}

// Words returns a copy of the data zone: bit j of word k is set iff index
// k*32+j is available. The result round-trips through FromWords.
func (p *Pool) Words() []uint32 {
	words := make([]uint32, p.dataWords)
	for w := range words {
		words[w] = p.store.Word(w)
	}
	return words
}

// Acquire returns the lowest available index and marks it occupied, or -1 if
// the pool is exhausted. Exhaustion is an expected outcome, not an error.
func (p *Pool) Acquire() int {
	for {
		h := p.cursor
		for h < p.hierWords && p.hierWord(h) == 0 {
			h++
		}
		p.cursor = h
		if h == p.hierWords {
			p.metrics.RecordAcquire(-1)
			return -1
		}

		hw := p.hierWord(h)
		hierBit := bits.TrailingZeros32(hw)
		w := h*wordBits + hierBit

		var dw uint32
		if w < p.dataWords {
			dw = p.store.Word(w)
		}
		if dw == 0 {
			// Stale summary bit; resolve lazily and rescan.
			p.setHierWord(h, hw&^(uint32(1)<<hierBit))
			continue
		}

		bit := bits.TrailingZeros32(dw)
		index := w*wordBits + bit
		if index >= p.size {
			// Unreachable while the tail mask invariant holds; the word has
			// no usable bits, so treat it as occupied.
			p.setHierWord(h, hw&^(uint32(1)<<hierBit))
			continue
		}

		dw &^= uint32(1) << bit
		p.store.SetWord(w, dw)
		p.available--

		if dw == 0 {
			hw &^= uint32(1) << hierBit
			p.setHierWord(h, hw)
			if hw == 0 {
				for h < p.hierWords && p.hierWord(h) == 0 {
					h++
				}
				p.cursor = h
			}
		}

		p.metrics.RecordAcquire(index)
		return index
	}
}

// Release returns an index to the pool.
//
// Out-of-range indices and double releases are tolerated as silent no-ops;
// the deallocation path stays free of error handling for routine misuse with
// stale or garbage handles.
func (p *Pool) Release(index int) {
	if index < 0 || index >= p.size {
		p.metrics.RecordRelease(index, false)
		return
	}

	w := index >> wordShift
	mask := uint32(1) << (index & wordMask)
	dw := p.store.Word(w)

	if dw&mask != 0 {
		// Already available.
		p.metrics.RecordRelease(index, false)
		return
	}

	p.store.SetWord(w, dw|mask)
	p.available++

	if dw == 0 {
		// The word transitioned empty to nonempty; surface it in the
		// hierarchy and pull the cursor back so the freed slot is found on
		// the very next Acquire.
		h := w >> wordShift
		p.setHierWord(h, p.hierWord(h)|uint32(1)<<(w&wordMask))
		if h < p.cursor {
			p.cursor = h
		}
	}

	p.metrics.RecordRelease(index, true)
}

// IsOccupied returns true if index is currently allocated.
// It panics with *ErrIndexOutOfRange for an out-of-range index.
func (p *Pool) IsOccupied(index int) bool {
	p.checkIndex(index)
	return !p.store.Get(index)
}

// IsAvailable returns true if index is currently free.
// It panics with *ErrIndexOutOfRange for an out-of-range index, the same
// bounds policy as IsOccupied.
func (p *Pool) IsAvailable(index int) bool {
	p.checkIndex(index)
	return p.store.Get(index)
}

// Refresh fully recomputes the hierarchy zone from the data zone and resets
// the cursor to the first word with availability. Cost is proportional to
// the data-zone word count.
func (p *Pool) Refresh() {
	p.rebuild()
	p.logger.Debug("hierarchy rebuilt",
		"capacity", p.size,
		"available", p.available,
		"cursor", p.cursor,
	)
	p.metrics.RecordRefresh(true)
}

// RefreshHint repositions the cursor to the hierarchy word hint when that
// word already has availability, skipping the full rebuild. When it does
// not, RefreshHint falls back to Refresh.
//
// The fast path trusts the caller's assertion that no earlier hierarchy
// word has availability. A wrong assertion delays reuse of earlier slots
// until the next Release of one of them or the next Refresh; it never
// corrupts occupancy.
//
// hint must be in [0, HierWordCount()); violations return
// *ErrIndexOutOfRange.
func (p *Pool) RefreshHint(hint int) error {
	if hint < 0 || hint >= p.hierWords {
		return &ErrIndexOutOfRange{Index: hint, Size: p.hierWords}
	}
	if p.hierWord(hint) != 0 {
		p.cursor = hint
		p.metrics.RecordRefresh(false)
		return nil
	}
	p.Refresh()
	return nil
}

// Clone returns an independent deep copy. The data zone is copied verbatim;
// the hierarchy and cursor are rebuilt fresh rather than inherited, so the
// copy carries no allocation-history-specific cursor state. The logger and
// metrics collector are shared with the original.
func (p *Pool) Clone() *Pool {
	c := &Pool{
		store:     bitvec.New(p.dataWords + p.hierWords),
		size:      p.size,
		dataWords: p.dataWords,
		hierWords: p.hierWords,
		logger:    p.logger,
		metrics:   p.metrics,
	}
	for w := 0; w < p.dataWords; w++ {
		c.store.SetWord(w, p.store.Word(w))
	}
	c.rebuild()
	return c
}

// Size returns the fixed capacity N.
func (p *Pool) Size() int {
	return p.size
}

// AvailableCount returns the number of free indices.
func (p *Pool) AvailableCount() int {
	return p.available
}

// OccupiedCount returns the number of allocated indices.
func (p *Pool) OccupiedCount() int {
	return p.size - p.available
}

// IsEmpty returns true if no index is occupied.
func (p *Pool) IsEmpty() bool {
	return p.available == p.size
}

// IsFull returns true if no index is available; Acquire would return -1.
func (p *Pool) IsFull() bool {
	return p.available == 0
}

// NextAvailableIndex returns the first index summarized by the cursor's
// hierarchy word, or -1 when the cursor has run past the hierarchy. It is a
// search hint only: the returned index is not guaranteed to be available
// itself. Call Acquire for a validated index.
func (p *Pool) NextAvailableIndex() int {
	if p.cursor >= p.hierWords {
		return -1
	}
	return p.cursor * wordBits * wordBits
}

// HierWordCount returns the number of hierarchy words, the exclusive upper
// bound for RefreshHint.
func (p *Pool) HierWordCount() int {
	return p.hierWords
}

// String implements fmt.Stringer with a short diagnostic summary.
func (p *Pool) String() string {
	return fmt.Sprintf("bitpool.Pool(size=%d occupied=%d cursor=%d/%d)",
		p.size, p.OccupiedCount(), p.cursor, p.hierWords)
}

func (p *Pool) checkIndex(index int) {
	if index < 0 || index >= p.size {
		panic(&ErrIndexOutOfRange{Index: index, Size: p.size})
	}
}

func (p *Pool) hierWord(h int) uint32 {
	return p.store.Word(p.dataWords + h)
}

func (p *Pool) setHierWord(h int, value uint32) {
	p.store.SetWord(p.dataWords+h, value)
}

// reset puts the pool into the all-available state: both zones all ones,
// tail bits past N in the last data word and past D in the last hierarchy
// word masked off.
func (p *Pool) reset() {
	p.store.Fill(true)

	if tail := p.size & wordMask; tail != 0 {
		p.store.SetWord(p.dataWords-1, uint32(1)<<tail-1)
	}
	if tail := p.dataWords & wordMask; tail != 0 {
		p.setHierWord(p.hierWords-1, uint32(1)<<tail-1)
	}

	p.cursor = 0
	p.available = p.size
}

// rebuild recomputes every hierarchy word and the availability count from
// the data zone, then points the cursor at the first nonzero hierarchy word
// (or past the end when none exists).
func (p *Pool) rebuild() {
	available := 0
	cursor := p.hierWords

	for h := 0; h < p.hierWords; h++ {
		var hw uint32
		base := h * wordBits
		limit := min(base+wordBits, p.dataWords)
		for w := base; w < limit; w++ {
			dw := p.store.Word(w)
			if dw != 0 {
				hw |= uint32(1) << (w - base)
				available += bits.OnesCount32(dw)
			}
		}
		p.setHierWord(h, hw)
		if hw != 0 && cursor == p.hierWords {
			cursor = h
		}
	}

	p.cursor = cursor
	p.available = available
}
