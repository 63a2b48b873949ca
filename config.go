package microbp

import (
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/sharnoff/microbp/initializers"
	"github.com/sharnoff/microbp/transfer"
)

// Config holds the settings a Network is built with. They are fixed for the life of the Network.
type Config struct {
	// LearningRate (eta) scales each weight update. Typically in [0, 1].
	LearningRate float64

	// Momentum (alpha) is the fraction of the previous update to a weight that is added to the
	// next one.
	Momentum float64

	// SmoothingHorizon is the number of samples the average error is smoothed over.
	SmoothingHorizon float64

	// FireWindow is the number of recent forward passes over which each unit's fire rate is
	// measured. Zero disables tracking.
	FireWindow int

	// Seed is the seed of the source of randomness used to initialize weights.
	Seed int64

	// Transfer is the activation function used by every non-input unit.
	Transfer transfer.Func

	// Init sets the starting weights of each unit's outgoing connections.
	Init initializers.Initializer

	// Parallel spreads the per-unit work within each layer across goroutines. Layers are still
	// processed strictly in order.
	Parallel bool
}

// These are the values that DefaultConfig provides.
const (
	DefaultLearningRate     float64 = 0.15
	DefaultMomentum         float64 = 0.5
	DefaultSmoothingHorizon float64 = 100
	DefaultFireWindow       int     = 500
)

// DefaultConfig returns the Config used by New when no Options are given: tanh units, weights
// uniform in [0, 1) from seed 1, eta = 0.15, alpha = 0.5, and an error horizon of 100 samples.
func DefaultConfig() Config {
	return Config{
		LearningRate:     DefaultLearningRate,
		Momentum:         DefaultMomentum,
		SmoothingHorizon: DefaultSmoothingHorizon,
		FireWindow:       DefaultFireWindow,
		Seed:             1,
		Transfer:         transfer.Tanh(),
		Init:             initializers.Uniform(),
	}
}

// Option modifies a Config. Options are applied in order by New.
type Option func(*Config)

// WithLearningRate sets Config.LearningRate
func WithLearningRate(eta float64) Option {
	return func(c *Config) { c.LearningRate = eta }
}

// WithMomentum sets Config.Momentum
func WithMomentum(alpha float64) Option {
	return func(c *Config) { c.Momentum = alpha }
}

// WithSmoothing sets Config.SmoothingHorizon
func WithSmoothing(horizon float64) Option {
	return func(c *Config) { c.SmoothingHorizon = horizon }
}

// WithFireWindow sets Config.FireWindow
func WithFireWindow(window int) Option {
	return func(c *Config) { c.FireWindow = window }
}

// WithSeed sets Config.Seed
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithTransfer sets Config.Transfer
func WithTransfer(f transfer.Func) Option {
	return func(c *Config) { c.Transfer = f }
}

// WithInitializer sets Config.Init
func WithInitializer(init initializers.Initializer) Option {
	return func(c *Config) { c.Init = init }
}

// WithParallel sets Config.Parallel
func WithParallel(parallel bool) Option {
	return func(c *Config) { c.Parallel = parallel }
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks that every field of the Config can be used. The returned error, if any, is of
// type *ConfigurationError.
func (c Config) Validate() error {
	switch {
	case !finite(c.LearningRate) || c.LearningRate < 0:
		return &ConfigurationError{"LearningRate", "must be a finite, non-negative number"}
	case !finite(c.Momentum) || c.Momentum < 0:
		return &ConfigurationError{"Momentum", "must be a finite, non-negative number"}
	case !finite(c.SmoothingHorizon) || c.SmoothingHorizon < 0:
		return &ConfigurationError{"SmoothingHorizon", "must be a finite, non-negative number"}
	case c.FireWindow < 0:
		return &ConfigurationError{"FireWindow", "must not be negative"}
	case c.Transfer == nil:
		return &ConfigurationError{"Transfer", NilArgError{"transfer function"}.Error()}
	case c.Init == nil:
		return &ConfigurationError{"Init", NilArgError{"initializer"}.Error()}
	}

	return nil
}

// fileConfig is the JSON form of Config. Unset fields keep their defaults.
type fileConfig struct {
	LearningRate     *float64
	Momentum         *float64
	SmoothingHorizon *float64
	FireWindow       *int
	Seed             *int64
	Transfer         *string
	Parallel         *bool
}

// LoadConfig reads a Config from the JSON file at path, starting from DefaultConfig. The
// transfer function is given by its registered name, e.g.:
//
//	{"LearningRate": 0.2, "Momentum": 0.4, "Transfer": "logistic", "Seed": 7}
//
// The weight initializer cannot be set from file, and is always the default.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return c, errors.Wrapf(err, "Couldn't load config from %q", path)
	}

	defer f.Close()

	var fc fileConfig
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(&fc); err != nil {
		return c, errors.Wrapf(err, "Couldn't load config, failed to decode JSON from %q", path)
	}

	if fc.LearningRate != nil {
		c.LearningRate = *fc.LearningRate
	}
	if fc.Momentum != nil {
		c.Momentum = *fc.Momentum
	}
	if fc.SmoothingHorizon != nil {
		c.SmoothingHorizon = *fc.SmoothingHorizon
	}
	if fc.FireWindow != nil {
		c.FireWindow = *fc.FireWindow
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.Parallel != nil {
		c.Parallel = *fc.Parallel
	}
	if fc.Transfer != nil {
		if c.Transfer, err = transfer.ByName(*fc.Transfer); err != nil {
			return c, errors.Wrapf(err, "Couldn't load config from %q", path)
		}
	}

	if err = c.Validate(); err != nil {
		return c, errors.Wrapf(err, "Couldn't load config from %q", path)
	}

	return c, nil
}
