/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for Akaylee Fold. Provides
command-line options, configuration management, and a clean user interface for
RNA secondary structure prediction with parameter sweeps and logging.
*/

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kleascm/akaylee-fold/cmd/fold/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logFormat  string
	logDir     string

	// Input configuration
	fastaPaths []string
	rawSeq     string

	// Solver configuration
	solverPath    string
	rnafoldPath   string
	solverTimeout time.Duration

	// Estimation configuration
	gamma      float64
	engineName string
	pairWeight float64

	// Sweep configuration
	workers  int
	fallback bool

	// Output configuration
	outputDir    string
	withPairProb bool
	withSweep    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "akaylee-fold",
		Short: "Akaylee Fold - RNA secondary structure prediction engine",
		Long: `Akaylee Fold predicts RNA secondary structures from nucleotide sequences.
It combines the external CentroidFold solver with a local gamma-centroid
dynamic-programming estimator, falling back automatically when the solver is
unavailable, and drives full gamma/engine parameter sweeps with per-record
fault isolation.`,
		Version: "1.0.0",
	}

	// Persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Directory for timestamped log files (stdout only when empty)")

	rootCmd.PersistentFlags().StringVar(&solverPath, "solver-path", "centroid_fold", "Path to the centroid_fold binary")
	rootCmd.PersistentFlags().StringVar(&rnafoldPath, "rnafold-path", "RNAfold", "Path to the RNAfold binary")
	rootCmd.PersistentFlags().DurationVar(&solverTimeout, "timeout", 5*time.Minute, "Wall-clock budget per solver invocation")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output", "", "Directory for JSON result files (stdout only when empty)")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("solver_path", rootCmd.PersistentFlags().Lookup("solver-path"))
	viper.BindPFlag("rnafold_path", rootCmd.PersistentFlags().Lookup("rnafold-path"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output"))

	// predict command
	predictCmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the structure of each sequence under one configuration",
		Long: `Predict the consensus secondary structure for every sequence in the input
under a single weighting configuration. The external solver is tried first and
the local gamma-centroid estimator takes over on any solver failure.`,
		RunE: commands.RunPredict,
	}

	predictCmd.Flags().StringSliceVar(&fastaPaths, "fasta", []string{}, "FASTA files to process")
	predictCmd.Flags().StringVar(&rawSeq, "seq", "", "Inline sequence (alternative to --fasta)")
	predictCmd.Flags().Float64Var(&gamma, "gamma", 6.0, "Gamma weighting factor (higher favors unpaired positions)")
	predictCmd.Flags().StringVar(&engineName, "engine", "BL", "Inference engine (BL, CONTRAfold, RNAfold)")
	predictCmd.Flags().Float64Var(&pairWeight, "pair-weight", 2.0, "Base-pair weight passed to the solver")
	predictCmd.Flags().BoolVar(&withPairProb, "pair-prob", false, "Include per-position pairing probabilities")
	predictCmd.Flags().BoolVar(&withSweep, "with-sweep", false, "Attach the canonical parameter sweep to each result")

	rootCmd.AddCommand(predictCmd)

	// sweep command
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the canonical gamma/engine parameter sweep",
		Long: `Evaluate the full cross-product of 10 gamma values and 3 inference engines
(30 configurations) for every sequence in the input. Failures are isolated per
configuration: a failing combination is recorded with its error and never
aborts the remaining evaluations.`,
		RunE: commands.RunSweep,
	}

	sweepCmd.Flags().StringSliceVar(&fastaPaths, "fasta", []string{}, "FASTA files to process")
	sweepCmd.Flags().StringVar(&rawSeq, "seq", "", "Inline sequence (alternative to --fasta)")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "Parallel sweep workers (0 = auto-detect)")
	sweepCmd.Flags().BoolVar(&fallback, "fallback", false, "Resolve failing records via the local estimator instead of recording errors")

	rootCmd.AddCommand(sweepCmd)

	// engines command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "engines",
		Short: "List available inference engines",
		Run:   commands.ListEngines,
	})

	// check command for built-in self-checks
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Perform built-in self-checks for system validation",
		Long: `Verify that the external solver and partition-function binaries are
reachable and the output directory is writable. Useful for CI/CD integration.`,
		RunE: commands.PerformSelfCheck,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
