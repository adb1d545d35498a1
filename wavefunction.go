// wavefunction.go
package qsim

import "math"

/*
Branch is one possible outcome of a collapse, weighted by the squared
amplitude that leads to it.
*/
type Branch[T any] struct {
	Value       T
	Probability float64
}

/*
WaveFunction is an ordered set of branches that a single uniform draw resolves
into one definite outcome. Ordering matters: the draw is compared against the
running sum of probabilities, first branch first.
*/
type WaveFunction[T any] struct {
	Branches []Branch[T]
}

func NewWaveFunction[T any](branches ...Branch[T]) *WaveFunction[T] {
	return &WaveFunction[T]{Branches: branches}
}

// Total is the summed probability of every branch.
func (wf *WaveFunction[T]) Total() float64 {
	var total float64
	for _, b := range wf.Branches {
		total += b.Probability
	}
	return total
}

func (wf *WaveFunction[T]) IsNormalized(tolerance float64) bool {
	return math.Abs(wf.Total()-1) <= tolerance
}

/*
Collapse takes exactly one draw from src and returns the first branch whose
cumulative probability exceeds it. Rounding can leave the sum a hair under 1,
in which case the last branch wins.
*/
func (wf *WaveFunction[T]) Collapse(src Source) T {
	var zero T
	if len(wf.Branches) == 0 {
		return zero
	}

	r := src.Float64()

	var cumulativeProb float64
	for _, b := range wf.Branches {
		cumulativeProb += b.Probability
		if r < cumulativeProb {
			return b.Value
		}
	}

	return wf.Branches[len(wf.Branches)-1].Value
}
