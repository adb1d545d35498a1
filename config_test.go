package qsim

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadConfig(t *testing.T) {
	Convey("Given no config file", t, func() {
		cfg, err := LoadConfig("")

		Convey("The defaults should apply", func() {
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, NewConfig())
		})
	})

	Convey("Given a YAML config file", t, func() {
		path := filepath.Join(t.TempDir(), "qsim.yaml")
		body := "seed: 7\ntrials: 250\nghz_qubits: 4\n"
		So(os.WriteFile(path, []byte(body), 0o600), ShouldBeNil)

		cfg, err := LoadConfig(path)

		Convey("Its values should override the defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Seed, ShouldEqual, uint64(7))
			So(cfg.Trials, ShouldEqual, 250)
			So(cfg.GHZQubits, ShouldEqual, 4)
			So(cfg.Tolerance, ShouldEqual, NormalizationTolerance)
		})
	})

	Convey("Given a missing config file", t, func() {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

		Convey("Loading should fail", func() {
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("QSIM_TRIALS", "12")
	t.Setenv("QSIM_SEED", "99")

	Convey("Given QSIM_ environment variables", t, func() {
		cfg, err := LoadConfig("")

		Convey("They should override the defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Trials, ShouldEqual, 12)
			So(cfg.Seed, ShouldEqual, uint64(99))
		})
	})
}

func TestConfigSource(t *testing.T) {
	Convey("Given two configs with the same seed", t, func() {
		a := &Config{Seed: testSeed}
		b := &Config{Seed: testSeed}

		Convey("Their sources should produce the same draws", func() {
			srcA, srcB := a.Source(), b.Source()
			for i := 0; i < 5; i++ {
				So(srcA.Float64(), ShouldEqual, srcB.Float64())
			}
		})

		Convey("Options should measure reproducibly", func() {
			run := func(c *Config) []Bit {
				sys := NewQuantumSystem(c.Options()...)
				sys.AddQubitAmount(16)
				for i := 0; i < sys.Len(); i++ {
					sys.Qubit(i).ApplyHadamard()
				}
				bits, err := sys.MeasureAllQubits()
				So(err, ShouldBeNil)
				return bits
			}
			So(run(a), ShouldResemble, run(b))
		})
	})
}
