package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/theapemachine/qsim"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "qsim",
		Usage: "walk through qubits, GHZ states and a tape adder",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "config file (yaml, toml or json)"},
			&cli.Uint64Flag{Name: "seed", Usage: "random seed, 0 for a fresh one every run"},
		},
		Commands: []*cli.Command{
			{
				Name:   "deutsch",
				Usage:  "run the Deutsch-Jozsa circuit on a random oracle",
				Action: runDeutsch,
			},
			{
				Name:  "ghz",
				Usage: "entangle a system into a GHZ state and measure it",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "qubits", Usage: "qubits in the system"},
					&cli.IntFlag{Name: "trials", Usage: "measurements in the histogram"},
				},
				Action: runGHZ,
			},
			{
				Name:   "tape",
				Usage:  "run the tape adder",
				Action: runTape,
			},
			{
				Name:   "demo",
				Usage:  "system, GHZ state, tape and histogram in one go",
				Action: runDemo,
			},
		},
	}
}

// loadConfig resolves the config file and lets command line flags win.
func loadConfig(c *cli.Context) (*qsim.Config, error) {
	cfg, err := qsim.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}
	if c.IsSet("qubits") {
		cfg.GHZQubits = c.Int("qubits")
	}
	if c.IsSet("trials") {
		cfg.Trials = c.Int("trials")
	}

	return cfg, nil
}

func runDeutsch(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	w := c.App.Writer
	result := qsim.DeutschJozsa(cfg.Source())

	for _, step := range result.Steps {
		fmt.Fprintf(w, "v1: %s, v2: %s\n", step.V1, step.V2)
	}

	verdict := color.New(color.FgGreen, color.Bold)
	if result.Verdict == qsim.Balanced {
		verdict = color.New(color.FgYellow, color.Bold)
	}
	verdict.Fprintln(w, result.Verdict.String())

	return nil
}

func buildGHZ(cfg *qsim.Config) (*qsim.QuantumSystem, *qsim.GHZSystem, error) {
	opts := cfg.Options()

	system := qsim.NewQuantumSystem(opts...)
	system.AddQubitAmount(cfg.GHZQubits)

	ghz := qsim.NewGHZSystem(opts...)
	if err := ghz.CreateFromSystem(system.Copy()); err != nil {
		return nil, nil, err
	}

	return system, ghz, nil
}

func runGHZ(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	_, ghz, err := buildGHZ(cfg)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "GHZ state: %s\n", ghz)

	return measureAndTally(w, ghz, cfg.Trials)
}

func runTape(c *cli.Context) error {
	qtm := qsim.NewQuantumTuringMachine()
	qtm.Run()

	fmt.Fprintf(c.App.Writer, "Quantum tape: %s\n", qtm)
	return nil
}

func runDemo(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	system, ghz, err := buildGHZ(cfg)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "System: %s\n", system)
	fmt.Fprintf(w, "GHZ state: %s\n", ghz)

	if err := measureAndTally(w, ghz, cfg.Trials); err != nil {
		return err
	}

	return runTape(c)
}

func measureAndTally(w io.Writer, ghz *qsim.GHZSystem, trials int) error {
	outcome, err := ghz.Measure()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Measured: %s\n", outcome)

	metrics, err := ghz.Sample(trials)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "After %d measurements, the results were:\n", metrics.Total())
	writeHistogram(w, metrics)

	return nil
}

func writeHistogram(w io.Writer, metrics *qsim.Metrics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Outcome", "Count", "Frequency"})

	for _, outcome := range metrics.Outcomes() {
		table.Append([]string{
			outcome,
			strconv.Itoa(metrics.Count(outcome)),
			strconv.FormatFloat(metrics.Frequency(outcome), 'f', 3, 64),
		})
	}

	table.Render()
}
