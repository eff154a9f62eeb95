package bitpool

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Indices(t *testing.T) {
	p, err := New(100)
	require.NoError(t, err)

	for _, index := range []int{0, 31, 32, 50, 99} {
		p.Set(index, false)
	}

	t.Run("occupied", func(t *testing.T) {
		assert.Equal(t, []int{0, 31, 32, 50, 99}, slices.Collect(p.OccupiedIndices()))
	})

	t.Run("occupied sub-range", func(t *testing.T) {
		assert.Equal(t, []int{31, 32, 50}, slices.Collect(p.Indices(false, 10, 99)))
		assert.Equal(t, []int{99}, slices.Collect(p.Indices(false, 99, 100)))
	})

	t.Run("available sub-range", func(t *testing.T) {
		assert.Equal(t, []int{30, 33, 34}, slices.Collect(p.Indices(true, 30, 35)))
	})

	t.Run("clamped and inverted ranges", func(t *testing.T) {
		assert.Equal(t, []int{99}, slices.Collect(p.Indices(false, 60, 1000)))
		assert.Empty(t, slices.Collect(p.Indices(false, 50, 50)))
		assert.Empty(t, slices.Collect(p.Indices(false, 80, 20)))
		assert.Empty(t, slices.Collect(p.Indices(true, -5, 0)))
	})

	t.Run("early stop", func(t *testing.T) {
		var got []int
		for index := range p.OccupiedIndices() {
			got = append(got, index)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []int{0, 31}, got)
	})

	t.Run("restartable", func(t *testing.T) {
		seq := p.OccupiedIndices()
		first := slices.Collect(seq)
		second := slices.Collect(seq)
		assert.Equal(t, first, second)
	})
}

func TestPool_Indices_PartialTailWord(t *testing.T) {
	// Capacity not a multiple of 32: the masked tail must never leak
	// phantom occupied indices.
	p, err := New(40)
	require.NoError(t, err)

	assert.Empty(t, slices.Collect(p.OccupiedIndices()))
	assert.Len(t, slices.Collect(p.AvailableIndices()), 40)

	p.Fill()
	assert.Len(t, slices.Collect(p.OccupiedIndices()), 40)
	assert.Empty(t, slices.Collect(p.AvailableIndices()))
}
