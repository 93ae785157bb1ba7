// Package config externalizes every tunable of the benchmark run: input
// path, artifact directories, split fraction, seed and log level. Values are
// resolved by viper from defaults, an optional config file, and environment
// variables prefixed INSUREBENCH_.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/YuminosukeSato/insurebench/pkg/errors"
)

// Config is the resolved pipeline configuration.
type Config struct {
	// DataPath is the input CSV. There is deliberately no hardcoded default
	// path baked into the pipeline itself.
	DataPath string `mapstructure:"data_path"`

	// ModelDir receives one model bundle per trained estimator. Empty
	// disables persistence.
	ModelDir string `mapstructure:"model_dir"`

	// ReportDir receives the metrics YAML and the two figures. Empty
	// disables the file artifacts; the table still goes to the log.
	ReportDir string `mapstructure:"report_dir"`

	// TestSize is the holdout fraction.
	TestSize float64 `mapstructure:"test_size"`

	// Seed fixes the split shuffle and the forest randomness.
	Seed int64 `mapstructure:"seed"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// Plots toggles figure rendering.
	Plots bool `mapstructure:"plots"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataPath:  "insurance.csv",
		ModelDir:  "models",
		ReportDir: "reports",
		TestSize:  0.3,
		Seed:      42,
		LogLevel:  "info",
		Plots:     true,
	}
}

// Load resolves the configuration. A non-empty file path must exist and
// parse; environment variables (INSUREBENCH_DATA_PATH and friends) override
// file values.
func Load(file string) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault("data_path", def.DataPath)
	v.SetDefault("model_dir", def.ModelDir)
	v.SetDefault("report_dir", def.ReportDir)
	v.SetDefault("test_size", def.TestSize)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("plots", def.Plots)

	v.SetEnvPrefix("INSUREBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "config.Load: read %s", file)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "config.Load: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c Config) Validate() error {
	if c.DataPath == "" {
		return errors.NewValueError("config.Validate", "data_path must not be empty")
	}
	if c.TestSize <= 0 || c.TestSize >= 1 {
		return errors.NewValueError("config.Validate", "test_size must be in (0, 1)")
	}
	return nil
}
