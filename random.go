package qsim

import "math/rand/v2"

// Source supplies the uniform draws in [0,1) that drive collapse and oracle choice.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

/*
NewSource returns a reproducible Source for a non-zero seed. A zero seed means
"don't care" and falls back to the runtime's global generator.
*/
func NewSource(seed uint64) Source {
	if seed == 0 {
		return globalSource{}
	}

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
