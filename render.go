package qsim

import (
	"fmt"
	"strings"
)

// amplitudePattern names the shapes an amplitude pair is rendered as.
type amplitudePattern int

const (
	patternWeighted amplitudePattern = iota
	patternPlus                      // +1/√2, +1/√2
	patternMinus                     // +1/√2, -1/√2
	patternFlippedMinus              // -1/√2, +1/√2
	patternNegativePlus              // -1/√2, -1/√2
	patternEqual
)

const invSqrt2Prefix = "0.707"

/*
formatAmplitude prints an amplitude to three decimals and trims the trailing
zeros, along with a dangling decimal point.
*/
func formatAmplitude(amp float64) string {
	s := fmt.Sprintf("%.3f", amp)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	if s == "-0" {
		return "0"
	}

	return s
}

/*
classifyAmplitudes inspects the formatted pair, not the raw floats, so any pair
that prints as ±0.707 is treated as ±1/√2.
*/
func classifyAmplitudes(zero, one string) amplitudePattern {
	negOne := strings.HasPrefix(one, "-"+invSqrt2Prefix)
	negZero := strings.HasPrefix(zero, "-"+invSqrt2Prefix)
	posOne := strings.HasPrefix(one, invSqrt2Prefix)
	posZero := strings.HasPrefix(zero, invSqrt2Prefix)

	switch {
	case posOne && posZero:
		return patternPlus
	case negOne && posZero:
		return patternMinus
	case posOne && negZero:
		return patternFlippedMinus
	case negOne && negZero:
		return patternNegativePlus
	case one == zero:
		return patternEqual
	default:
		return patternWeighted
	}
}

/*
renderPair writes the two-branch form shared by single qubits and entangled
groups. The plus and minus shorthands are left to the caller, since a single
qubit prints |+> where a group prints the expanded sum.
*/
func renderPair(pattern amplitudePattern, zero, one, zeroKet, oneKet string) string {
	switch pattern {
	case patternFlippedMinus:
		return fmt.Sprintf("(-1/√2%s + 1/√2%s)", zeroKet, oneKet)
	case patternNegativePlus:
		return fmt.Sprintf("-1/√2(%s + %s)", zeroKet, oneKet)
	case patternEqual:
		return fmt.Sprintf("%s(%s + %s)", zero, zeroKet, oneKet)
	default:
		return fmt.Sprintf("(%s%s + %s%s)", zero, zeroKet, one, oneKet)
	}
}
