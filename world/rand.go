package world

import (
	"math/rand/v2"
)

// Rand is a deterministic random number generator. The whole state lives in
// the struct, so copying a Rand produces an identical, independent
// generator. The World owns one and never touches a global source, which is
// what makes a playthrough replayable from its seed.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return
}

// RInt returns a random integer in [min, max], both ends included.
func (r *Rand) RInt(min, max int64) int64 {
	if max < min {
		panic("RInt: max must not be smaller than min")
	}
	return min + rand.New(&r.pcg).Int64N(max-min+1)
}
