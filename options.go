package qsim

// NormalizationTolerance is how far amp0²+amp1² may stray from 1 at measurement.
const NormalizationTolerance = 0.001

type settings struct {
	src       Source
	tolerance float64
}

func defaultSettings() settings {
	return settings{
		src:       NewSource(0),
		tolerance: NormalizationTolerance,
	}
}

// Option configures a QuantumSystem or GHZSystem.
type Option func(*settings)

// WithSource injects the random source used for collapse.
func WithSource(src Source) Option {
	return func(s *settings) {
		if src != nil {
			s.src = src
		}
	}
}

// WithTolerance overrides the normalization tolerance checked at measurement.
func WithTolerance(tolerance float64) Option {
	return func(s *settings) {
		if tolerance > 0 {
			s.tolerance = tolerance
		}
	}
}

func applyOptions(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
