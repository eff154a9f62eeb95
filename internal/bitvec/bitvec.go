package bitvec

import (
	"fmt"
	"math"
	"math/bits"
)

// WordBits is the number of bits per storage word.
const WordBits = 32

// MaxWords is the addressable word limit of a Vector. It is chosen so that
// every bit index fits into a non-negative int32, keeping indices portable
// across 32-bit and 64-bit platforms.
const MaxWords = math.MaxInt32 / WordBits

// Vector is a flat, word-addressable bit vector with a fixed size.
//
// It offers per-bit get/set, word-granular access, and bulk fill. It carries
// no interpretation of what a bit means; callers layer their own polarity and
// zoning on top.
type Vector struct {
	words []uint32
}

// New creates a Vector with the given number of 32-bit words, all zero.
// It panics if wordCount is negative or exceeds MaxWords; sizing is a
// structural invariant of the caller, not a runtime condition.
func New(wordCount int) *Vector {
	if wordCount < 0 || wordCount > MaxWords {
		panic(fmt.Sprintf("bitvec: word count %d out of range [0, %d]", wordCount, MaxWords))
	}

	return &Vector{
		words: make([]uint32, wordCount),
	}
}

// Len returns the size of the vector in bits.
func (v *Vector) Len() int {
	return len(v.words) * WordBits
}

// WordCount returns the number of storage words.
func (v *Vector) WordCount() int {
	return len(v.words)
}

// Get returns the bit at index i.
func (v *Vector) Get(i int) bool {
	return v.words[i/WordBits]&(uint32(1)<<(i%WordBits)) != 0
}

// Set writes the bit at index i.
func (v *Vector) Set(i int, value bool) {
	mask := uint32(1) << (i % WordBits)
	if value {
		v.words[i/WordBits] |= mask
	} else {
		v.words[i/WordBits] &^= mask
	}
}

// Word returns storage word w.
func (v *Vector) Word(w int) uint32 {
	return v.words[w]
}

// SetWord overwrites storage word w.
func (v *Vector) SetWord(w int, value uint32) {
	v.words[w] = value
}

// Fill sets every bit of the vector to value.
func (v *Vector) Fill(value bool) {
	var word uint32
	if value {
		word = ^uint32(0)
	}
	for i := range v.words {
		v.words[i] = word
	}
}

// FillWords overwrites words in [from, to) with value.
func (v *Vector) FillWords(from, to int, value uint32) {
	for w := from; w < to; w++ {
		v.words[w] = value
	}
}

// OnesCount returns the number of set bits in words [from, to).
func (v *Vector) OnesCount(from, to int) int {
	count := 0
	for w := from; w < to; w++ {
		count += bits.OnesCount32(v.words[w])
	}
	return count
}

// Clone returns an independent deep copy of the vector.
func (v *Vector) Clone() *Vector {
	words := make([]uint32, len(v.words))
	copy(words, v.words)
	return &Vector{words: words}
}
