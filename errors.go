package bitpool

import "fmt"

// ErrInvalidCapacity indicates a non-positive capacity or one exceeding
// MaxPoolSize.
type ErrInvalidCapacity struct {
	Capacity int
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("invalid capacity: %d (must be in [1, %d])", e.Capacity, MaxPoolSize)
}

// ErrCapacityTooSmall indicates that an occupancy word slice implies more
// indices than the requested capacity can hold.
type ErrCapacityTooSmall struct {
	Capacity int
	Words    int
}

func (e *ErrCapacityTooSmall) Error() string {
	return fmt.Sprintf("capacity too small: %d words cover %d bits, capacity is %d",
		e.Words, e.Words*wordBits, e.Capacity)
}

// ErrIndexOutOfRange indicates an index or span outside its admissible domain.
//
// Checked accessors (IsOccupied, IsAvailable, Set, Toggle) panic with this
// error; validating operations (SetRange, RefreshHint, FromBitmap) return it.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d (size %d)", e.Index, e.Size)
}
