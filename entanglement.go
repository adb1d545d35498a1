package qsim

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

/*
EntangledState is the record a GHZ construction leaves behind. Instead of a
full joint vector it keeps one shared amplitude pair and, per original qubit,
a marker for the branch the qubit collapses with.

ZerosVector[i] + OnesVector[i] is 1 for every i: each qubit belongs to exactly
one branch.
*/
type EntangledState struct {
	ID             string
	CreatedAt      time.Time
	ZerosAmplitude float64
	OnesAmplitude  float64
	ZerosVector    []int
	OnesVector     []int
}

func newEntangledState(seed *Qubit) *EntangledState {
	return &EntangledState{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now(),
		ZerosAmplitude: seed.amp0,
		OnesAmplitude:  seed.amp1,
		ZerosVector:    []int{0},
		OnesVector:     []int{1},
	}
}

// record files a qubit under the zeros branch or the ones branch.
func (es *EntangledState) record(inZeros bool) {
	if inZeros {
		es.ZerosVector = append(es.ZerosVector, 1)
		es.OnesVector = append(es.OnesVector, 0)
		return
	}

	es.ZerosVector = append(es.ZerosVector, 0)
	es.OnesVector = append(es.OnesVector, 1)
}

// Size is the number of qubits in the entangled group.
func (es *EntangledState) Size() int {
	return len(es.ZerosVector)
}

/*
GHZSystem builds and measures a GHZ-style entangled group. The whole group
collapses together on a single draw, which is what distinguishes it from
measuring the qubits of a QuantumSystem one by one.
*/
type GHZSystem struct {
	state *EntangledState
	settings
}

func NewGHZSystem(opts ...Option) *GHZSystem {
	return &GHZSystem{settings: applyOptions(opts)}
}

// State returns the current entangled record, or nil before construction.
func (g *GHZSystem) State() *EntangledState {
	return g.state
}

/*
CreateFromSystem entangles the qubits of sys. It mutates sys, so callers pass
sys.Copy() when they want to keep the original.

Qubit 0 goes through a Hadamard and seeds the shared amplitudes. Every other
qubit gets a CNOT with qubit 0 as control and is filed under the zeros branch
when its |0> amplitude is still exactly 1.
*/
func (g *GHZSystem) CreateFromSystem(sys *QuantumSystem) error {
	if sys.Len() == 0 {
		return ErrEmptySystem
	}

	control := sys.Qubit(0)
	control.ApplyHadamard()
	state := newEntangledState(control)

	for i := 1; i < sys.Len(); i++ {
		current := sys.Qubit(i)
		current.ApplyCNOT(control)
		state.record(current.IsDefiniteZero())
	}

	g.state = state

	errnie.Info(
		"CreateFromSystem - id %s, qubits %d, amplitudes %v/%v",
		state.ID, state.Size(), state.ZerosAmplitude, state.OnesAmplitude,
	)
	return nil
}

func (g *GHZSystem) wavefunction() *WaveFunction[string] {
	ones := Branch[string]{
		Value:       Ket(One, len(g.state.OnesVector)),
		Probability: g.state.OnesAmplitude * g.state.OnesAmplitude,
	}
	zeros := Branch[string]{
		Value:       Ket(Zero, len(g.state.ZerosVector)),
		Probability: g.state.ZerosAmplitude * g.state.ZerosAmplitude,
	}

	return NewWaveFunction(ones, zeros)
}

/*
Measure collapses the whole group with one draw and returns either the all-ones
or the all-zeros ket. Mixed outcomes cannot occur.
*/
func (g *GHZSystem) Measure() (string, error) {
	if g.state == nil {
		return "", ErrNoEntangledState
	}

	wf := g.wavefunction()
	if !wf.IsNormalized(g.tolerance) {
		return "", fmt.Errorf("%w: GHZ state %+v", ErrNotNormalized, *g.state)
	}

	return wf.Collapse(g.src), nil
}

// Sample measures the group trials times and tallies the outcomes.
func (g *GHZSystem) Sample(trials int) (*Metrics, error) {
	if trials < 1 {
		return nil, ErrInvalidTrials
	}

	metrics := NewMetrics()
	for i := 0; i < trials; i++ {
		outcome, err := g.Measure()
		if err != nil {
			return nil, err
		}
		metrics.Record(outcome)
	}

	return metrics, nil
}

func (g *GHZSystem) String() string {
	if g.state == nil {
		return "<empty>"
	}

	zero := formatAmplitude(g.state.ZerosAmplitude)
	one := formatAmplitude(g.state.OnesAmplitude)
	zeroKet := Ket(Zero, len(g.state.ZerosVector))
	oneKet := Ket(One, len(g.state.OnesVector))

	switch pattern := classifyAmplitudes(zero, one); pattern {
	case patternPlus:
		return fmt.Sprintf("1/√2(%s + %s)", zeroKet, oneKet)
	case patternMinus:
		return fmt.Sprintf("1/√2(%s - %s)", zeroKet, oneKet)
	default:
		return renderPair(pattern, zero, one, zeroKet, oneKet)
	}
}
