package qsim

import (
	"fmt"
	"strings"
)

/*
QuantumSystem is an ordered collection of qubits it owns outright. The order is
the addressing scheme for every indexed operation, and qubits are never shared
with another system.
*/
type QuantumSystem struct {
	qubits []*Qubit
	settings
}

func NewQuantumSystem(opts ...Option) *QuantumSystem {
	return &QuantumSystem{
		qubits:   make([]*Qubit, 0),
		settings: applyOptions(opts),
	}
}

// AddQubit appends q. The system owns it from here on.
func (qs *QuantumSystem) AddQubit(q *Qubit) {
	qs.qubits = append(qs.qubits, q)
}

// AddQubitAmount appends n fresh qubits in |0>.
func (qs *QuantumSystem) AddQubitAmount(n int) {
	for i := 0; i < n; i++ {
		qs.qubits = append(qs.qubits, NewZeroQubit())
	}
}

func (qs *QuantumSystem) Len() int {
	return len(qs.qubits)
}

// Qubit returns the qubit at index i, or nil when i is out of range.
func (qs *QuantumSystem) Qubit(i int) *Qubit {
	if i < 0 || i >= len(qs.qubits) {
		return nil
	}
	return qs.qubits[i]
}

/*
measureQubit collapses one qubit with a single draw: below amp1² it reads 1,
otherwise 0. The amplitudes themselves are left alone.
*/
func (qs *QuantumSystem) measureQubit(q *Qubit) Bit {
	return NewWaveFunction(
		Branch[Bit]{Value: One, Probability: q.ProbabilityOne()},
		Branch[Bit]{Value: Zero, Probability: q.ProbabilityZero()},
	).Collapse(qs.src)
}

/*
MeasureAllQubits collapses every qubit independently, in system order. Every
qubit is checked for normalization before any draw is taken, so a bad qubit
fails the whole measurement without consuming randomness.
*/
func (qs *QuantumSystem) MeasureAllQubits() ([]Bit, error) {
	for i, q := range qs.qubits {
		if !q.IsNormalized(qs.tolerance) {
			return nil, fmt.Errorf(
				"%w: qubit %v (amp0=%g, amp1=%g) at index %d",
				ErrNotNormalized, q, q.amp0, q.amp1, i,
			)
		}
	}

	bits := make([]Bit, len(qs.qubits))
	for i, q := range qs.qubits {
		bits[i] = qs.measureQubit(q)
	}

	return bits, nil
}

// Copy deep-copies every qubit into a new system with the same settings.
func (qs *QuantumSystem) Copy() *QuantumSystem {
	copied := &QuantumSystem{
		qubits:   make([]*Qubit, 0, len(qs.qubits)),
		settings: qs.settings,
	}

	for _, q := range qs.qubits {
		copied.qubits = append(copied.qubits, q.Copy())
	}

	return copied
}

func (qs *QuantumSystem) String() string {
	return renderQubits(qs.qubits)
}

func renderQubits(qubits []*Qubit) string {
	parts := make([]string, len(qubits))
	for i, q := range qubits {
		parts[i] = q.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
