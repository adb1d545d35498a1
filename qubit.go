package qsim

import (
	"math"

	"github.com/theapemachine/errnie"
)

/*
Qubit holds two real amplitudes, one for |0> and one for |1>. Gates mutate the
pair in place. Normalization is only checked when a qubit is measured.
*/
type Qubit struct {
	amp0 float64 // |0⟩ amplitude
	amp1 float64 // |1⟩ amplitude

	// tag is display only, it marks a qubit that went through the oracle.
	tag string
}

func NewQubit(amp0, amp1 float64) *Qubit {
	return &Qubit{
		amp0: amp0,
		amp1: amp1,
	}
}

// NewZeroQubit returns a qubit in |0>.
func NewZeroQubit() *Qubit {
	return NewQubit(1.0, 0.0)
}

func (q *Qubit) Zero() float64 { return q.amp0 }
func (q *Qubit) One() float64  { return q.amp1 }
func (q *Qubit) Tag() string   { return q.tag }

// Set overwrites both amplitudes, used to force a definite classical state.
func (q *Qubit) Set(amp0, amp1 float64) {
	q.amp0 = amp0
	q.amp1 = amp1
}

// SetBit forces the qubit into |0> or |1>.
func (q *Qubit) SetBit(b Bit) {
	if b == One {
		q.Set(0.0, 1.0)
		return
	}
	q.Set(1.0, 0.0)
}

func (q *Qubit) ClearTag() {
	q.tag = ""
}

/*
IsDefiniteOne and IsDefiniteZero compare with exact float equality. The adder
and the GHZ builder branch on them, so they stay exact and live here where they
can be probed directly.
*/
func (q *Qubit) IsDefiniteOne() bool {
	return q.amp1 == 1.0
}

func (q *Qubit) IsDefiniteZero() bool {
	return q.amp0 == 1.0
}

// hasNoOne reports an exactly zero |1> amplitude.
func (q *Qubit) hasNoOne() bool {
	return q.amp1 == 0.0
}

func (q *Qubit) inBasisState() bool {
	return q.amp0 == 0.0 || q.amp1 == 0.0
}

// ProbabilityOne is the chance of collapsing to 1.
func (q *Qubit) ProbabilityOne() float64 {
	return q.amp1 * q.amp1
}

func (q *Qubit) ProbabilityZero() float64 {
	return q.amp0 * q.amp0
}

// IsNormalized reports whether amp0²+amp1² is within tolerance of 1.
func (q *Qubit) IsNormalized(tolerance float64) bool {
	return math.Abs(q.ProbabilityZero()+q.ProbabilityOne()-1) <= tolerance
}

func (q *Qubit) swap() {
	q.amp0, q.amp1 = q.amp1, q.amp0
}

// ApplyXOR is a NOT gate: the amplitudes trade places.
func (q *Qubit) ApplyXOR() {
	q.swap()
}

/*
ApplyHadamard only acts on a basis state. Once both amplitudes are non-zero the
gate does nothing, so H applied twice does not bring |0> back. That is a known
limitation of the two-amplitude model.

	H = 1/√2 * [1  1]
	           [1 -1]
*/
func (q *Qubit) ApplyHadamard() {
	if !q.inBasisState() {
		errnie.Info("ApplyHadamard - skipped, qubit already superposed %v", q)
		return
	}

	newAmp0 := (q.amp0 + q.amp1) / math.Sqrt(2)
	newAmp1 := (q.amp0 - q.amp1) / math.Sqrt(2)
	q.amp0 = newAmp0
	q.amp1 = newAmp1
}

// ApplyCNOT flips the qubit when the control is more likely 1 than 0.
func (q *Qubit) ApplyCNOT(control *Qubit) {
	if control.ProbabilityOne() > 0.5 {
		q.swap()
	}
}

/*
ApplyCCNOT flips the qubit when both controls carry any |1> amplitude at all.
This is a looser test than ApplyCNOT uses.
*/
func (q *Qubit) ApplyCCNOT(control1, control2 *Qubit) {
	if !control1.hasNoOne() && !control2.hasNoOne() {
		q.swap()
	}
}

// Copy returns an independent qubit with the same amplitudes and no tag.
func (q *Qubit) Copy() *Qubit {
	return NewQubit(q.amp0, q.amp1)
}

// CNOT applies a controlled NOT to target and returns it.
func CNOT(target, control *Qubit) *Qubit {
	target.ApplyCNOT(control)
	return target
}

// CCNOT applies a Toffoli gate to target and returns it.
func CCNOT(target, control1, control2 *Qubit) *Qubit {
	target.ApplyCCNOT(control1, control2)
	return target
}

func (q *Qubit) String() string {
	if q.hasNoOne() {
		return q.tag + formatAmplitude(q.amp0) + "|0>"
	}

	if q.amp0 == 0.0 {
		return q.tag + formatAmplitude(q.amp1) + "|1>"
	}

	zero := formatAmplitude(q.amp0)
	one := formatAmplitude(q.amp1)

	switch pattern := classifyAmplitudes(zero, one); pattern {
	case patternPlus:
		return q.tag + "|+>"
	case patternMinus:
		return q.tag + "|->"
	default:
		return q.tag + renderPair(pattern, zero, one, "|0>", "|1>")
	}
}
