package qsim

import "sort"

/*
Metrics tallies measurement outcomes by label, the histogram behind repeated
GHZ measurement.
*/
type Metrics struct {
	counts map[string]int
	total  int
}

func NewMetrics() *Metrics {
	return &Metrics{
		counts: make(map[string]int),
	}
}

func (m *Metrics) Record(outcome string) {
	m.counts[outcome]++
	m.total++
}

func (m *Metrics) Count(outcome string) int {
	return m.counts[outcome]
}

func (m *Metrics) Total() int {
	return m.total
}

// Frequency is the share of trials that produced outcome, 0 when nothing was recorded.
func (m *Metrics) Frequency(outcome string) float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.counts[outcome]) / float64(m.total)
}

// Outcomes lists every recorded label in lexical order.
func (m *Metrics) Outcomes() []string {
	outcomes := make([]string, 0, len(m.counts))
	for outcome := range m.counts {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)
	return outcomes
}

func (m *Metrics) ExportMetrics() map[string]interface{} {
	counts := make(map[string]int, len(m.counts))
	for outcome, n := range m.counts {
		counts[outcome] = n
	}

	return map[string]interface{}{
		"total":  m.total,
		"counts": counts,
	}
}
