// Package config decodes the solver's configuration surface (§6): the
// generation/time/variation budgets, population sizing and algorithm
// choice, the mutation probability tree, and the telemetry toggles.
// Loosely-typed YAML is decoded into strongly-typed structs via
// mapstructure, matching the hashicorp/nomad-style config loading named
// in the domain-stack wiring.
package config

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// PopulationAlgorithm names which evolution.Population implementation a
// run uses.
type PopulationAlgorithm string

const (
	AlgorithmGreedy    PopulationAlgorithm = "greedy"
	AlgorithmRosomaxa  PopulationAlgorithm = "rosomaxa"
)

// PopulationConfig configures the population's size and growth policy
// (§6 "population{...}").
type PopulationConfig struct {
	InitialSize  int                 `mapstructure:"initial_size" yaml:"initial_size"`
	InitialQuota float64             `mapstructure:"initial_quota" yaml:"initial_quota"`
	MaxSize      int                 `mapstructure:"max_size" yaml:"max_size"`
	Algorithm    PopulationAlgorithm `mapstructure:"algorithm" yaml:"algorithm"`
	MaxInitSize  int                 `mapstructure:"max_init_size" yaml:"max_init_size"`
}

// SelectionConfig configures how many offspring are attempted per
// generation (§6 "selection.offspring_size").
type SelectionConfig struct {
	OffspringSize int `mapstructure:"offspring_size" yaml:"offspring_size"`
}

// MethodWeight pairs a named ruin or recreate method with its selection
// weight and a loosely-typed parameter bag, decoded later by whichever
// constructor understands that method name.
type MethodWeight struct {
	Name       string                 `mapstructure:"name" yaml:"name"`
	Weight     float64                `mapstructure:"weight" yaml:"weight"`
	Parameters map[string]interface{} `mapstructure:"parameters" yaml:"parameters"`
}

// RuinRecreateConfig is one leaf of the mutation tree: a weighted list of
// ruin methods and a weighted list of recreate (insertion) strategies
// (§6 "ruin_recreate").
type RuinRecreateConfig struct {
	Ruin     []MethodWeight `mapstructure:"ruin" yaml:"ruin"`
	Recreate []MethodWeight `mapstructure:"recreate" yaml:"recreate"`
}

// LocalSearchConfig is the mutation tree's "local_search" leaf: the set of
// local-search passes (currently just 2-opt) and their weights.
type LocalSearchConfig struct {
	Methods []MethodWeight `mapstructure:"methods" yaml:"methods"`
}

// MutationConfig is the §6 "mutation: tree of {composite, local_search,
// ruin_recreate} nodes" — a composite is a weighted choice among its own
// children, recursively, bottoming out at LocalSearch/RuinRecreate leaves.
type MutationConfig struct {
	Composite    []MutationConfig    `mapstructure:"composite" yaml:"composite,omitempty"`
	LocalSearch  *LocalSearchConfig  `mapstructure:"local_search" yaml:"local_search,omitempty"`
	RuinRecreate *RuinRecreateConfig `mapstructure:"ruin_recreate" yaml:"ruin_recreate,omitempty"`
	Weight       float64             `mapstructure:"weight" yaml:"weight"`
}

// LoggingConfig controls structured-log cadence during the evolution loop
// (§6 "telemetry.logging").
type LoggingConfig struct {
	Enabled            bool `mapstructure:"enabled" yaml:"enabled"`
	LogBestEvery       int  `mapstructure:"log_best_every" yaml:"log_best_every"`
	LogPopulationEvery int  `mapstructure:"log_population_every" yaml:"log_population_every"`
}

// MetricsConfig controls metrics sampling cadence (§6 "telemetry.metrics").
type MetricsConfig struct {
	Enabled               bool `mapstructure:"enabled" yaml:"enabled"`
	TrackPopulationEvery  int  `mapstructure:"track_population_every" yaml:"track_population_every"`
}

// TelemetryConfig bundles logging and metrics cadence.
type TelemetryConfig struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
}

// MinVariation configures the VariationCoefficient termination criterion
// (§6 "min_variation(sample, threshold)"); Sample <= 0 means disabled.
type MinVariation struct {
	Sample    int     `mapstructure:"sample" yaml:"sample"`
	Threshold float64 `mapstructure:"threshold" yaml:"threshold"`
}

// Config is the root configuration document (§6 "Configuration surface").
type Config struct {
	MaxGenerations  int              `mapstructure:"max_generations" yaml:"max_generations"`
	MaxTimeSeconds  int              `mapstructure:"max_time_seconds" yaml:"max_time_seconds"`
	MinVariation    MinVariation     `mapstructure:"min_variation" yaml:"min_variation"`
	Population      PopulationConfig `mapstructure:"population" yaml:"population"`
	Selection       SelectionConfig  `mapstructure:"selection" yaml:"selection"`
	Mutation        MutationConfig   `mapstructure:"mutation" yaml:"mutation"`
	Telemetry       TelemetryConfig  `mapstructure:"telemetry" yaml:"telemetry"`
}

// Default returns the §6-documented default configuration: 3000
// generations, a 300s wall-clock budget, variation tracking off, a
// greedy population of size 4, an offspring size of 0 (Selection.
// OffspringSize is not read by the solver package), and a single
// ruin_recreate mutation node pairing the random_job ruin with the best
// recreate, each at weight 1.
func Default() *Config {
	return &Config{
		MaxGenerations: 3000,
		MaxTimeSeconds: 300,
		MinVariation:   MinVariation{Sample: 0, Threshold: 0},
		Population: PopulationConfig{
			InitialSize:  4,
			InitialQuota: 0.05,
			MaxSize:      4,
			Algorithm:    AlgorithmGreedy,
			MaxInitSize:  4,
		},
		Selection: SelectionConfig{OffspringSize: 0},
		Mutation: MutationConfig{
			RuinRecreate: &RuinRecreateConfig{
				Ruin:     []MethodWeight{{Name: "random_job", Weight: 1}},
				Recreate: []MethodWeight{{Name: "best", Weight: 1}},
			},
			Weight: 1,
		},
		Telemetry: TelemetryConfig{
			Logging: LoggingConfig{Enabled: true, LogBestEvery: 10, LogPopulationEvery: 50},
			Metrics: MetricsConfig{Enabled: false, TrackPopulationEvery: 50},
		},
	}
}

// Load reads path as YAML, decodes it into a Config layered over
// Default(), and Validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	return Decode(raw)
}

// Decode parses raw YAML into a loosely-typed map, then decodes it over
// Default() via mapstructure (so any field the document omits keeps its
// default), and validates the merged result.
func Decode(raw []byte) (*Config, error) {
	var generic map[string]interface{}
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("config: %w", ErrMalformed(err))
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := decoder.Decode(generic); err != nil {
		return nil, fmt.Errorf("config: %w", ErrMalformed(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ErrMalformed wraps a decode-layer error as a ConfigurationError-tagged
// failure (§7 "ConfigurationError... surfaced eagerly... with a code +
// human message").
func ErrMalformed(cause error) error {
	return &ConfigurationError{Code: "MALFORMED_CONFIG", Message: cause.Error()}
}

// Validate checks the cross-field invariants the decoder alone cannot
// enforce, aggregating every violation via go-multierror so a caller sees
// the full list in one pass rather than fixing errors one at a time.
func (c *Config) Validate() error {
	var errs *multierror.Error
	if c.MaxGenerations <= 0 {
		errs = multierror.Append(errs, &ConfigurationError{Code: "BAD_MAX_GENERATIONS", Message: "max_generations must be positive"})
	}
	if c.MaxTimeSeconds <= 0 {
		errs = multierror.Append(errs, &ConfigurationError{Code: "BAD_MAX_TIME", Message: "max_time_seconds must be positive"})
	}
	if c.Population.MaxSize <= 0 {
		errs = multierror.Append(errs, &ConfigurationError{Code: "BAD_POPULATION_SIZE", Message: "population.max_size must be positive"})
	}
	if c.Population.Algorithm != AlgorithmGreedy && c.Population.Algorithm != AlgorithmRosomaxa {
		errs = multierror.Append(errs, &ConfigurationError{Code: "BAD_POPULATION_ALGORITHM", Message: fmt.Sprintf("unknown population.algorithm %q", c.Population.Algorithm)})
	}
	if c.MinVariation.Sample < 0 {
		errs = multierror.Append(errs, &ConfigurationError{Code: "BAD_MIN_VARIATION", Message: "min_variation.sample must be non-negative"})
	}

	return errs.ErrorOrNil()
}
