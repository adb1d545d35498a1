package qsim

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Tolerance float64 `mapstructure:"tolerance"`
	Seed      uint64  `mapstructure:"seed"`
	Trials    int     `mapstructure:"trials"`
	GHZQubits int     `mapstructure:"ghz_qubits"`
}

func NewConfig() *Config {
	return &Config{
		Tolerance: NormalizationTolerance,
		Seed:      0,
		Trials:    100,
		GHZQubits: 10,
	}
}

/*
LoadConfig layers the defaults, an optional config file at path and QSIM_*
environment variables, in increasing order of precedence. An empty path skips
the file.
*/
func LoadConfig(path string) (*Config, error) {
	defaults := NewConfig()

	v := viper.New()
	v.SetEnvPrefix("qsim")
	v.AutomaticEnv()

	v.SetDefault("tolerance", defaults.Tolerance)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("trials", defaults.Trials)
	v.SetDefault("ghz_qubits", defaults.GHZQubits)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Source returns the random source for the configured seed.
func (c *Config) Source() Source {
	return NewSource(c.Seed)
}

// Options turns the config into system options.
func (c *Config) Options() []Option {
	return []Option{
		WithSource(c.Source()),
		WithTolerance(c.Tolerance),
	}
}
