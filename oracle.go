package qsim

// Oracle is one of the four single-bit functions a Deutsch-Jozsa black box can hide.
type Oracle int

const (
	ConstantZero Oracle = iota
	ConstantOne
	BalancedOneForOne  // f(1) = 1
	BalancedOneForZero // f(0) = 1
)

const oracleTag = "U_f"

func (o Oracle) String() string {
	switch o {
	case ConstantZero:
		return "constant-0"
	case ConstantOne:
		return "constant-1"
	case BalancedOneForOne:
		return "balanced(1→1)"
	case BalancedOneForZero:
		return "balanced(0→1)"
	default:
		return "unknown"
	}
}

// Output is the bit the oracle answers with when queried.
func (o Oracle) Output() Bit {
	switch o {
	case ConstantOne, BalancedOneForOne:
		return One
	default:
		return Zero
	}
}

func (o Oracle) IsConstant() bool {
	return o == ConstantZero || o == ConstantOne
}

// drawOracle picks one of the four oracles with equal probability.
func drawOracle(src Source) Oracle {
	r := src.Float64()

	switch {
	case r < 0.25:
		return ConstantZero
	case r < 0.50:
		return ConstantOne
	case r < 0.75:
		return BalancedOneForOne
	default:
		return BalancedOneForZero
	}
}

/*
ApplyOracleUf marks the qubit as having passed through U_f and queries a freshly
drawn oracle. The amplitudes are untouched; the returned bit is the oracle's
answer for its implicit input.
*/
func (q *Qubit) ApplyOracleUf(src Source) Bit {
	q.tag = oracleTag
	return drawOracle(src).Output()
}
