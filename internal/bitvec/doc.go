// Package bitvec provides the raw bit-storage primitive underlying the pool:
// a flat, fixed-size, word-addressable vector of 32-bit words.
//
// The package is deliberately dumb. It knows nothing about zones, polarity,
// or hierarchies; it only stores bits and hands out words. Higher-level
// consistency (tail masking, summary maintenance) lives entirely in the
// caller.
package bitvec
