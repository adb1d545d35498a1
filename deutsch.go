package qsim

import "github.com/theapemachine/errnie"

// Verdict is the Deutsch-Jozsa answer about the hidden function.
type Verdict int

const (
	Balanced Verdict = iota
	Constant
)

func (v Verdict) String() string {
	if v == Constant {
		return "Function is constant"
	}
	return "Function is balanced"
}

// CircuitStep is the rendering of both wires after one stage of the circuit.
type CircuitStep struct {
	Name string
	V1   string
	V2   string
}

type DeutschJozsaResult struct {
	Steps   []CircuitStep
	Answer  Bit
	Verdict Verdict
	V1      *Qubit
	V2      *Qubit
}

/*
DeutschJozsa walks two qubits through the circuit below and decides whether
the oracle is constant or balanced.

	v1: |0> --------|H|--|    |--|H|--|Measure|
	                     | U_f|
	v2: |0> --|X|---|H|--|    |-------------------

The oracle is queried once per wire, then once more on v1 for the answer bit
that decides the collapse. The second Hadamard on v1 lands on a superposed
qubit and is a no-op.
*/
func DeutschJozsa(src Source) *DeutschJozsaResult {
	v1 := NewZeroQubit()
	v2 := NewZeroQubit()
	result := &DeutschJozsaResult{V1: v1, V2: v2}

	snapshot := func(name string) {
		result.Steps = append(result.Steps, CircuitStep{
			Name: name,
			V1:   v1.String(),
			V2:   v2.String(),
		})
	}

	v2.ApplyXOR()
	snapshot("X on v2")

	v1.ApplyHadamard()
	v2.ApplyHadamard()
	snapshot("H on v1 and v2")

	v1.ApplyOracleUf(src)
	v2.ApplyOracleUf(src)
	snapshot("U_f")

	result.Answer = v1.ApplyOracleUf(src)
	v1.ClearTag()

	v1.ApplyHadamard()
	if result.Answer == One {
		v1.SetBit(Zero)
	} else {
		v1.SetBit(One)
	}
	snapshot("H on v1 and collapse")

	result.Verdict = Balanced
	if v1.IsDefiniteZero() {
		result.Verdict = Constant
	}

	errnie.Info("DeutschJozsa - answer %v, verdict %v", result.Answer, result.Verdict)
	return result
}
