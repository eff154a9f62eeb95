package bitpool

import (
	"math/rand"
	"testing"
)

func BenchmarkPool_AcquireRelease(b *testing.B) {
	p, err := New(1 << 16)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		index := p.Acquire()
		p.Release(index)
	}
}

func BenchmarkPool_AcquireAll(b *testing.B) {
	const capacity = 1 << 16

	p, err := New(capacity)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if p.IsFull() {
			b.StopTimer()
			p.Clear()
			b.StartTimer()
		}
		p.Acquire()
	}
}

func BenchmarkPool_AcquireFragmented(b *testing.B) {
	// Worst-ish case: sparse availability scattered across the data zone,
	// forcing hierarchy scans instead of dense word drains.
	const capacity = 1 << 18

	p, err := New(capacity)
	if err != nil {
		b.Fatal(err)
	}
	p.Fill()

	rng := rand.New(rand.NewSource(1))
	free := make([]int, 0, 1024)
	for len(free) < cap(free) {
		index := rng.Intn(capacity)
		if p.IsOccupied(index) {
			p.Set(index, true)
			free = append(free, index)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		index := p.Acquire()
		if index < 0 {
			b.StopTimer()
			for _, f := range free {
				p.Release(f)
			}
			b.StartTimer()
			continue
		}
	}
}

func BenchmarkPool_SetRange(b *testing.B) {
	const capacity = 1 << 16

	p, err := New(capacity)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.SetRange(0, capacity, i%2 == 0)
	}
}

func BenchmarkPool_Refresh(b *testing.B) {
	const capacity = 1 << 16

	p, err := New(capacity)
	if err != nil {
		b.Fatal(err)
	}
	_ = p.SetRange(0, capacity/2, false)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Refresh()
	}
}
