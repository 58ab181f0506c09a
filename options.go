package santa

import "math/rand/v2"

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	strategy Strategy
	logger   Logger
	metrics  MetricsCollector
	rng      *rand.Rand
}

// WithStrategy sets a custom assignment strategy.
//
// Parameters:
//   - strategy: Strategy implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	st := strategy.NewMatching()
//	engine, err := santa.NewEngine(&cfg, santa.WithStrategy(st))
func WithStrategy(strategy Strategy) Option {
	return func(o *engineOptions) {
		o.strategy = strategy
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	engine, err := santa.NewEngine(&cfg, santa.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewEngine
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithRand injects an explicit random source, overriding the seed policy
// in Config. The source is reused across Generate calls, so successive
// calls draw from one continuing sequence.
//
// Parameters:
//   - rng: Random source for all randomized choices
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	rng := rand.New(rand.NewPCG(42, 43))
//	engine, err := santa.NewEngine(&cfg, santa.WithRand(rng))
func WithRand(rng *rand.Rand) Option {
	return func(o *engineOptions) {
		o.rng = rng
	}
}
