package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	require.NoError(t, app.Run(append([]string{"qsim"}, args...)))
	return out.String()
}

func TestTapeCommand(t *testing.T) {
	out := run(t, "tape")
	assert.Equal(t, "Quantum tape: [1|1>, 1|1>, 1|1>, 1|1>, 1|1>, 1|1>, 1|0>]\n", out)
}

func TestDeutschCommand(t *testing.T) {
	out := run(t, "--seed", "7", "deutsch")
	lines := strings.Split(strings.TrimSpace(out), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "v1: 1|0>, v2: 1|1>", lines[0])
	assert.Equal(t, "v1: |+>, v2: |->", lines[1])
	assert.Equal(t, "v1: U_f|+>, v2: U_f|->", lines[2])
	assert.Contains(t, []string{"Function is constant", "Function is balanced"}, lines[4])
}

func TestDeutschCommandIsReproducible(t *testing.T) {
	assert.Equal(t, run(t, "--seed", "3", "deutsch"), run(t, "--seed", "3", "deutsch"))
}

func TestGHZCommand(t *testing.T) {
	out := run(t, "--seed", "11", "ghz", "--qubits", "3", "--trials", "50")

	assert.Contains(t, out, "GHZ state: 1/√2(|000> + |111>)")
	assert.Contains(t, out, "After 50 measurements, the results were:")
	assert.Regexp(t, `Measured: \|(000|111)>`, out)
	assert.NotContains(t, out, "|010>")
}

func TestDemoCommandReadsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 5\ntrials: 20\nghz_qubits: 4\n"), 0o600))

	out := run(t, "--config", path, "demo")

	assert.Contains(t, out, "System: [1|0>, 1|0>, 1|0>, 1|0>]")
	assert.Contains(t, out, "GHZ state: 1/√2(|0000> + |1111>)")
	assert.Contains(t, out, "After 20 measurements, the results were:")
	assert.Contains(t, out, "Quantum tape:")
}

func TestMissingConfigFails(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{"qsim", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "ghz"})
	assert.Error(t, err)
}
