package santa

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for the assignment Engine.
type Config struct {
	// MinParticipants is the smallest roster the engine accepts.
	// A gift exchange needs at least 2 people; values below 2 are invalid.
	MinParticipants int `yaml:"minParticipants"`

	// MaxShuffleAttempts is the randomized attempt budget before the
	// engine falls back to constructive matching. The budget only affects
	// how much work the fast path does; it never affects the final
	// verdict, because the matching fallback decides feasibility exactly.
	MaxShuffleAttempts int `yaml:"maxShuffleAttempts"`

	// MaxAugmentSteps bounds the matching fallback's augmenting-path
	// search. The search always terminates on its own, so this exists only
	// to cap pathological worst cases. 0 means unbounded.
	MaxAugmentSteps int `yaml:"maxAugmentSteps"`

	// Seed is an explicit seed for the engine's random source. 0 means
	// unset; see DeterministicSeed for the derived alternative.
	Seed uint64 `yaml:"seed"`

	// DeterministicSeed derives the seed from the roster contents when no
	// explicit Seed is set. Two runs over the same roster then draw the
	// same random sequence, making results and verdicts reproducible
	// without coordinating a seed value.
	DeterministicSeed bool `yaml:"deterministicSeed"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		MinParticipants:    2,
		MaxShuffleAttempts: 1000,
		MaxAugmentSteps:    0, // unbounded; the search terminates on its own
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.MinParticipants == 0 {
		cfg.MinParticipants = defaults.MinParticipants
	}
	if cfg.MaxShuffleAttempts == 0 {
		cfg.MaxShuffleAttempts = defaults.MaxShuffleAttempts
	}
	// Note: MaxAugmentSteps of 0 is valid (unbounded), so we don't apply a default.
	// Note: Seed of 0 is valid (unset), so we don't apply a default.
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.MinParticipants < 2 {
		return fmt.Errorf(
			"MinParticipants must be >= 2, got %d: a gift exchange needs at least two people",
			cfg.MinParticipants,
		)
	}

	if cfg.MaxShuffleAttempts < 1 {
		return fmt.Errorf("MaxShuffleAttempts must be >= 1, got %d", cfg.MaxShuffleAttempts)
	}

	if cfg.MaxAugmentSteps < 0 {
		return fmt.Errorf("MaxAugmentSteps must be >= 0, got %d", cfg.MaxAugmentSteps)
	}

	return nil
}

// LoadConfig reads a YAML configuration file and applies defaults.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - Config: Parsed configuration with defaults applied
//   - error: File or parse error, or validation error
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// TestConfig returns a Config tuned for tests: a small attempt budget and
// roster-derived deterministic seeding.
//
// Returns:
//   - Config: Deterministic test configuration
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxShuffleAttempts = 50
	cfg.DeterministicSeed = true

	return cfg
}
