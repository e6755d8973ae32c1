package core

import "sync/atomic"

// Flag is a boolean shared between the dispatching thread and detached
// executor workers. All accesses are sequentially consistent. Holding a
// *Flag in a signature is how sharing is made visible.
type Flag struct {
	v atomic.Bool
}

func NewFlag(initial bool) *Flag {
	f := &Flag{}
	f.v.Store(initial)
	return f
}

func (f *Flag) Load() bool {
	return f.v.Load()
}

func (f *Flag) Store(v bool) {
	f.v.Store(v)
}

// Toggle flips the flag and returns the new value.
func (f *Flag) Toggle() bool {
	for {
		old := f.v.Load()
		if f.v.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
