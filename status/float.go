package status

import (
	"math"
	"sync/atomic"
)

// Float is an atomic float64 via bit conversion. Zero value reads 0.0.
type Float struct {
	bits atomic.Uint64
}

// Set stores val atomically
func (f *Float) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the value atomically
func (f *Float) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add adds delta and returns the new value
func (f *Float) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
