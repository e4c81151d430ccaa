package game

import "golang.org/x/exp/rand"

// RNG is the single random stream owned by a game instance. It wraps a
// PCG source so the stream state can be snapshotted when the search bot
// clones a state: a clone continues the exact sequence the parent would
// have produced, keeping same-seed games reproducible.
type RNG struct {
	src *rand.PCGSource
	*rand.Rand
}

func NewRNG(seed uint64) *RNG {
	src := &rand.PCGSource{}
	src.Seed(seed)
	return &RNG{src: src, Rand: rand.New(src)}
}

func (r *RNG) Clone() *RNG {
	state, err := r.src.MarshalBinary()
	if err != nil {
		// PCGSource.MarshalBinary cannot fail; keep the stream usable anyway.
		return NewRNG(r.Uint64())
	}
	src := &rand.PCGSource{}
	if err := src.UnmarshalBinary(state); err != nil {
		return NewRNG(r.Uint64())
	}
	return &RNG{src: src, Rand: rand.New(src)}
}
