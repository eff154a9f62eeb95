package bitpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	p, err := New(2, WithMetricsCollector(mc))
	require.NoError(t, err)

	p.Acquire()
	p.Acquire()
	p.Acquire() // exhausted

	p.Release(0)
	p.Release(0)  // double release, no-op
	p.Release(99) // out of range, no-op

	p.Refresh()
	require.NoError(t, p.RefreshHint(0)) // word 0 has availability, fast path

	assert.Equal(t, int64(3), mc.AcquireCount.Load())
	assert.Equal(t, int64(1), mc.ExhaustionCount.Load())
	assert.Equal(t, int64(3), mc.ReleaseCount.Load())
	assert.Equal(t, int64(2), mc.ReleaseNoopCount.Load())
	assert.Equal(t, int64(2), mc.RefreshCount.Load())
	assert.Equal(t, int64(1), mc.RebuildCount.Load())
}

func TestWithMetricsCollector_Nil(t *testing.T) {
	p, err := New(10, WithMetricsCollector(nil))
	require.NoError(t, err)

	// Falls back to the no-op collector.
	assert.Equal(t, 0, p.Acquire())
}
