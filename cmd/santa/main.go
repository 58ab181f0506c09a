// Package main provides the santa CLI: it reads an employee list and the
// prior cycle's assignments from CSV, generates the new gift assignments,
// and writes them back out as CSV.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	santa "github.com/vigneshprasad96/digital-xc-assignment"
	"github.com/vigneshprasad96/digital-xc-assignment/internal/logging"
	"github.com/vigneshprasad96/digital-xc-assignment/roster"
	"github.com/vigneshprasad96/digital-xc-assignment/types"
)

type cliOptions struct {
	employeesFile string
	previousFile  string
	outputFile    string
	configFile    string
	seed          uint64
	maxAttempts   int
	verbose       bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "santa",
		Short: "Generate Secret Santa assignments from an employee CSV",
		Long: `santa assigns a secret gift recipient to every employee such that
nobody draws themselves and nobody repeats their previous-year recipient.

The employee list and the optional previous-year assignments are read from
CSV files; the new assignments are written as CSV with the columns
Employee_Name,Employee_EmailID,Secret_Child_Name,Secret_Child_EmailID.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.employeesFile, "employees", "data/Employee-List.csv", "path to the employee CSV file")
	flags.StringVar(&opts.previousFile, "previous", "data/previous_assignments.csv", "path to the previous assignments CSV file (missing file = no history)")
	flags.StringVar(&opts.outputFile, "output", "data/output/assignments.csv", "path for the output CSV file")
	flags.StringVar(&opts.configFile, "config", "", "path to an optional YAML configuration file")
	flags.Uint64Var(&opts.seed, "seed", 0, "explicit random seed for reproducible runs (0 = auto)")
	flags.IntVar(&opts.maxAttempts, "max-attempts", 0, "randomized attempt budget before the matching fallback (0 = default)")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	return cmd
}

func run(opts *cliOptions) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := logging.NewSlog(slog.New(handler))

	cfg, err := loadConfig(opts)
	if err != nil {
		logger.Error("configuration rejected", "error", err)

		return err
	}

	store := roster.NewStore(logger)

	participants, err := store.LoadParticipants(opts.employeesFile)
	if err != nil {
		logger.Error("employee file rejected", "path", opts.employeesFile, "error", err)

		return err
	}

	previous, err := store.LoadPreviousPairings(opts.previousFile)
	if err != nil {
		logger.Error("previous assignments rejected", "path", opts.previousFile, "error", err)

		return err
	}

	engine, err := santa.NewEngine(&cfg, santa.WithLogger(logger))
	if err != nil {
		logger.Error("engine rejected configuration", "error", err)

		return err
	}

	pairings, err := engine.Generate(participants, previous)
	if err != nil {
		switch {
		case errors.Is(err, santa.ErrInfeasible):
			logger.Error("no valid assignment exists for this roster and history; "+
				"with very small groups, last year's pairs can rule out every permutation",
				"participants", len(participants),
				"previous_pairs", len(previous),
			)
		case types.IsInvalidInput(err):
			logger.Error("roster is unusable", "error", err)
		default:
			logger.Error("assignment generation failed", "error", err)
		}

		return err
	}

	if err := store.WritePairings(opts.outputFile, pairings); err != nil {
		logger.Error("failed to write assignments", "path", opts.outputFile, "error", err)

		return err
	}

	logger.Info("assignments complete",
		"participants", len(participants),
		"output", opts.outputFile,
	)

	return nil
}

// loadConfig resolves the engine configuration: YAML file if given,
// defaults otherwise, with CLI flags overriding either.
func loadConfig(opts *cliOptions) (santa.Config, error) {
	cfg := santa.DefaultConfig()
	if opts.configFile != "" {
		loaded, err := santa.LoadConfig(opts.configFile)
		if err != nil {
			return santa.Config{}, err
		}
		cfg = loaded
	}

	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.maxAttempts != 0 {
		cfg.MaxShuffleAttempts = opts.maxAttempts
	}

	if err := cfg.Validate(); err != nil {
		return santa.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
