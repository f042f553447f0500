// SPDX-License-Identifier: MIT

package worker

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables of a Worker. Zero values are not defaults; start
// from DefaultConfig or ParseConfig.
type Config struct {
	// QueueSize bounds the number of jobs waiting to run.
	QueueSize int `yaml:"queue_size" validate:"gte=1"`

	// Parallelism bounds concurrent cone solves inside one job.
	Parallelism int `yaml:"parallelism" validate:"gte=1,lte=64"`

	// MetricsNamespace prefixes every exported metric.
	MetricsNamespace string `yaml:"metrics_namespace" validate:"required,metricname"`

	// TraceSteps records each cone step as a span event.
	TraceSteps bool `yaml:"trace_steps"`
}

// Defaults applied by DefaultConfig.
const (
	DefaultQueueSize        = 16
	DefaultParallelism      = 1
	DefaultMetricsNamespace = "powergeom"
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		QueueSize:        DefaultQueueSize,
		Parallelism:      DefaultParallelism,
		MetricsNamespace: DefaultMetricsNamespace,
	}
}

// ParseConfig overlays a YAML document on DefaultConfig and validates the
// result. Keys absent from data keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	return nil
}

var (
	metricNameRE   = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	configValidate = newConfigValidator()
)

// configRules are the custom tags used by Config.
var configRules = map[string]validator.Func{
	"metricname": func(fl validator.FieldLevel) bool {
		return metricNameRE.MatchString(fl.Field().String())
	},
}

// newConfigValidator panics if a rule fails to register.
func newConfigValidator() *validator.Validate {
	v := validator.New()
	if err := registerRules(v, configRules); err != nil {
		panic(err)
	}

	return v
}

func registerRules(v *validator.Validate, rules map[string]validator.Func) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errors.Wrapf(err, "worker: register rule %q", tag)
		}
	}

	return nil
}
