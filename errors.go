package qsim

import "errors"

var (
	// ErrNotNormalized is returned when squared amplitudes do not sum to 1.
	ErrNotNormalized = errors.New("amplitudes do not compute to 1")

	ErrNoEntangledState = errors.New("no entangled state, build one first")
	ErrEmptySystem      = errors.New("quantum system has no qubits")
	ErrInvalidTrials    = errors.New("trials must be at least 1")
)
