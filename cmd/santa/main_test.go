package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vigneshprasad96/digital-xc-assignment/roster"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults when no file is given", func(t *testing.T) {
		cfg, err := loadConfig(&cliOptions{})

		require.NoError(t, err)
		require.Equal(t, 1000, cfg.MaxShuffleAttempts)
	})

	t.Run("flags override the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("maxShuffleAttempts: 10\nseed: 1\n"), 0o600))

		cfg, err := loadConfig(&cliOptions{
			configFile:  path,
			seed:        42,
			maxAttempts: 77,
		})

		require.NoError(t, err)
		require.Equal(t, uint64(42), cfg.Seed)
		require.Equal(t, 77, cfg.MaxShuffleAttempts)
	})

	t.Run("rejects a bad flag override", func(t *testing.T) {
		_, err := loadConfig(&cliOptions{maxAttempts: -3})
		require.Error(t, err)
	})
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	employees := filepath.Join(dir, "employees.csv")
	require.NoError(t, os.WriteFile(employees, []byte(
		"Employee_Name,Employee_EmailID\n"+
			"Alice,alice@example.com\n"+
			"Bob,bob@example.com\n"+
			"Charlie,charlie@example.com\n"+
			"Diana,diana@example.com\n"), 0o600))

	output := filepath.Join(dir, "out", "assignments.csv")

	err := run(&cliOptions{
		employeesFile: employees,
		previousFile:  filepath.Join(dir, "no-history.csv"),
		outputFile:    output,
		seed:          7,
	})
	require.NoError(t, err)

	store := roster.NewStore(nil)
	pairings, err := store.LoadPreviousPairings(output)
	require.NoError(t, err)
	require.Len(t, pairings, 4)
	for _, p := range pairings {
		require.False(t, p.IsSelf())
	}
}

func TestRun_InfeasibleHistory(t *testing.T) {
	dir := t.TempDir()

	employees := filepath.Join(dir, "employees.csv")
	require.NoError(t, os.WriteFile(employees, []byte(
		"Employee_Name,Employee_EmailID\n"+
			"Alice,alice@example.com\n"+
			"Bob,bob@example.com\n"), 0o600))

	previous := filepath.Join(dir, "previous.csv")
	require.NoError(t, os.WriteFile(previous, []byte(
		"Employee_Name,Employee_EmailID,Secret_Child_Name,Secret_Child_EmailID\n"+
			"Alice,alice@example.com,Bob,bob@example.com\n"+
			"Bob,bob@example.com,Alice,alice@example.com\n"), 0o600))

	err := run(&cliOptions{
		employeesFile: employees,
		previousFile:  previous,
		outputFile:    filepath.Join(dir, "assignments.csv"),
		maxAttempts:   10,
	})
	require.Error(t, err)
}
