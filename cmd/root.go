package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akorolev/quarterday/internal/grid"
	"github.com/akorolev/quarterday/internal/model"
	"github.com/akorolev/quarterday/internal/storage"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "qday",
	Short: "qday – a quarter-hour daily activity tracker",
	Long: `qday tracks what you do in each 15-minute slot of the day, shows the
category distribution and asks a generative-text service for productivity
advice. All data is stored locally in ~/.qday/.

Run without arguments to open the view you used last.`,
	Args: cobra.NoArgs,
	RunE: runRoot,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable diagnostic logging")
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(adviceCmd)
	rootCmd.AddCommand(resetCmd)
}

// runRoot restores the last active view, mirroring the remembered tab of the
// original tracker.
func runRoot(cmd *cobra.Command, args []string) error {
	store := mustOpenStore()
	switch store.ActiveView() {
	case model.ViewStats:
		return runStats(cmd, args)
	case model.ViewAdvice:
		adviceCached = true
		return runAdvice(cmd, args)
	default:
		return runShow(cmd, args)
	}
}

// newLogger builds the diagnostics logger. Diagnostics are silent unless
// --verbose is set; user-facing output goes to stdout/stderr directly.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not create logger:", err)
		return zap.NewNop()
	}
	return logger
}

// mustOpenStore opens the data store or exits with a storage error.
func mustOpenStore() *storage.Store {
	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	store, err := storage.Open(base, newLogger())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return store
}

// todayKey computes the date key once per invocation; it is passed down
// explicitly from here.
func todayKey() string {
	return grid.DateKey(time.Now())
}
