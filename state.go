package qsim

import "strings"

// Bit is a classical outcome of collapsing a qubit.
type Bit int

const (
	Zero Bit = 0
	One  Bit = 1
)

func (b Bit) String() string {
	if b == One {
		return "1"
	}
	return "0"
}

/*
Ket renders a run of identical basis labels in ket notation, so Ket(One, 3)
gives "|111>". It is how an entangled group reports a joint outcome.
*/
func Ket(b Bit, size int) string {
	return "|" + strings.Repeat(b.String(), size) + ">"
}
