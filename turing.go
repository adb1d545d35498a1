package qsim

import "github.com/theapemachine/errnie"

// TapeLength is two 2-bit operands plus a 3-bit sum.
const TapeLength = 7

const adderCell = 3

// DefaultTapePattern holds A=11 in cells 0-1 and B=11 in cells 2-3.
var DefaultTapePattern = [TapeLength]Bit{One, One, One, One, Zero, Zero, Zero}

/*
AdderResult is the 3-bit output of the tape adder, most significant bit first,
which is also the order it is written to cells 4, 5 and 6.
*/
type AdderResult struct {
	MostSignificant  *Qubit
	Middle           *Qubit
	LeastSignificant *Qubit
}

func (r AdderResult) cell(i int) *Qubit {
	switch i {
	case 0:
		return r.MostSignificant
	case 1:
		return r.Middle
	default:
		return r.LeastSignificant
	}
}

// MachineOption configures a QuantumTuringMachine.
type MachineOption func(*QuantumTuringMachine)

// WithTapePattern replaces the bits the head writes as it passes each cell.
func WithTapePattern(pattern [TapeLength]Bit) MachineOption {
	return func(m *QuantumTuringMachine) {
		m.pattern = pattern
	}
}

/*
QuantumTuringMachine walks a head across a seven cell tape of qubits. Each
cell is forced into the classical state given by the tape pattern as the head
reaches it. At cell 3 both operands are on the tape and the adder runs; cells
4 to 6 then receive the sum as the head moves over them.
*/
type QuantumTuringMachine struct {
	tape    [TapeLength]*Qubit
	pattern [TapeLength]Bit
	head    int
	sum     *AdderResult
}

func NewQuantumTuringMachine(opts ...MachineOption) *QuantumTuringMachine {
	m := &QuantumTuringMachine{pattern: DefaultTapePattern}
	for i := range m.tape {
		m.tape[i] = NewZeroQubit()
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *QuantumTuringMachine) Head() int {
	return m.head
}

func (m *QuantumTuringMachine) Halted() bool {
	return m.head >= TapeLength
}

// Tape returns copies of the cells, so callers cannot write to the tape.
func (m *QuantumTuringMachine) Tape() []*Qubit {
	cells := make([]*Qubit, TapeLength)
	for i, q := range m.tape {
		cells[i] = q.Copy()
	}
	return cells
}

/*
Step processes the cell under the head and advances it by one. It reports
false, without doing anything, once the machine has halted.
*/
func (m *QuantumTuringMachine) Step() bool {
	if m.Halted() {
		return false
	}

	m.tape[m.head].SetBit(m.pattern[m.head])

	if m.head == adderCell {
		// Operand A is cells 0 (high) and 1 (low), B is cells 2 (high) and 3 (low).
		sum := qubitAdd(m.tape[1], m.tape[0], m.tape[3], m.tape[2])
		m.sum = &sum
	}

	if m.head > adderCell && m.sum != nil {
		m.tape[m.head] = m.sum.cell(m.head - adderCell - 1)
	}

	m.head++
	return true
}

// Run steps the head until it falls off the end of the tape.
func (m *QuantumTuringMachine) Run() {
	for m.Step() {
	}
}

func (m *QuantumTuringMachine) String() string {
	return renderQubits(m.tape[:])
}

/*
qubitAdd adds two 2-bit numbers using nothing but XOR toggles on fresh qubits.
a0 and b0 are the low bits.

The ladder for the high bit is kept exactly as designed, with && binding
tighter than || in the mixed conditions. It diverges from a true full adder in one case:
a1=1, b1=0 with no carry sets the top bit instead of the middle one.
*/
func qubitAdd(a0, a1, b0, b1 *Qubit) AdderResult {
	c0 := NewZeroQubit()
	c1 := NewZeroQubit()
	c2 := NewZeroQubit()
	carry0 := NewZeroQubit()

	errnie.Info("qubitAdd - a=%v%v b=%v%v", a1, a0, b1, b0)

	if a0.IsDefiniteOne() && b0.IsDefiniteOne() {
		carry0.ApplyXOR()
	} else if a0.IsDefiniteOne() || b0.IsDefiniteOne() {
		c0.ApplyXOR()
	}

	switch {
	case a1.IsDefiniteOne() && b1.IsDefiniteOne() && carry0.IsDefiniteOne():
		c2.ApplyXOR()
		c1.ApplyXOR()
	case a1.IsDefiniteOne() && b1.IsDefiniteOne() && carry0.hasNoOne():
		c2.ApplyXOR()
	case a1.IsDefiniteOne() || (b1.IsDefiniteOne() && carry0.IsDefiniteOne()):
		c2.ApplyXOR()
	case a1.hasNoOne() && b1.hasNoOne() && carry0.IsDefiniteOne():
		c1.ApplyXOR()
	case a1.IsDefiniteOne() || (b1.IsDefiniteOne() && carry0.hasNoOne()):
		c1.ApplyXOR()
	}

	return AdderResult{
		MostSignificant:  c2,
		Middle:           c1,
		LeastSignificant: c0,
	}
}
