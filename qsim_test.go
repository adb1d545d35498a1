package qsim

// scriptedSource replays fixed draws in order and wraps around at the end.
type scriptedSource struct {
	draws []float64
	next  int
}

func newScriptedSource(draws ...float64) *scriptedSource {
	return &scriptedSource{draws: draws}
}

func (s *scriptedSource) Float64() float64 {
	r := s.draws[s.next%len(s.draws)]
	s.next++
	return r
}

func (s *scriptedSource) Taken() int {
	return s.next
}

const testSeed = 42
