package bitpool

import "github.com/RoaringBitmap/roaring/v2"

// FromBitmap creates a Pool of the given capacity from a roaring bitmap of
// OCCUPIED indices. This is the conventional external polarity (set =
// occupied), the inverse of the pool's internal set = available convention;
// the translation happens here at the boundary so internal invariants stay
// uniform.
//
// Every member of rb must be below capacity or *ErrIndexOutOfRange is
// returned. A nil or empty bitmap yields an all-available pool.
func FromBitmap(rb *roaring.Bitmap, capacity int, opts ...Option) (*Pool, error) {
	p, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	if rb == nil || rb.IsEmpty() {
		return p, nil
	}
	if maximum := rb.Maximum(); uint64(maximum) >= uint64(capacity) {
		return nil, &ErrIndexOutOfRange{Index: int(maximum), Size: capacity}
	}

	// Write the data zone directly, then rebuild; this path does not
	// maintain the hierarchy incrementally.
	it := rb.Iterator()
	for it.HasNext() {
		p.store.Set(int(it.Next()), false)
	}
	p.rebuild()

	return p, nil
}

// OccupiedBitmap exports the occupied indices as a roaring bitmap
// (set = occupied, the conventional external polarity). The result is
// independent of the pool; FromBitmap(p.OccupiedBitmap(), p.Size())
// reproduces the occupancy exactly.
func (p *Pool) OccupiedBitmap() *roaring.Bitmap {
	rb := roaring.New()
	for index := range p.OccupiedIndices() {
		rb.Add(uint32(index))
	}
	return rb
}

// AvailableBitmap exports the available indices as a roaring bitmap.
func (p *Pool) AvailableBitmap() *roaring.Bitmap {
	rb := roaring.New()
	for index := range p.AvailableIndices() {
		rb.Add(uint32(index))
	}
	return rb
}
