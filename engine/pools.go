package engine

import "sync"

// pooledTriples wraps []Triple so it can be stored in a sync.Pool without
// tripping the "pointer-like value stored in sync.Pool" lint rule (SA6002):
// the slice header itself isn't a pointer, the wrapper is.
type pooledTriples struct {
	data []Triple
}

var triplePool = sync.Pool{
	New: func() any {
		return &pooledTriples{data: make([]Triple, 0, 16)}
	},
}

// getTripleSlice borrows a zero-length []Triple with spare capacity from
// the pool. vectorize uses this for the raw-vector scratch space it builds
// once per line; the slice is handed back once a group finishes emitting.
func getTripleSlice() []Triple {
	w, _ := triplePool.Get().(*pooledTriples)
	return w.data[:0]
}

// putTripleSlice returns a triple slice to the pool once nothing in the
// pipeline still references its backing array. Callers must not retain the
// slice after this call.
func putTripleSlice(s []Triple) {
	triplePool.Put(&pooledTriples{data: s})
}
