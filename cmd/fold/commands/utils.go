/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee Fold commands. Provides common
configuration loading, logging setup, engine construction and input reading
used across all command implementations.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-fold/pkg/core"
	"github.com/kleascm/akaylee-fold/pkg/fasta"
	"github.com/kleascm/akaylee-fold/pkg/logging"
	"github.com/kleascm/akaylee-fold/pkg/solver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// appLogger is the logging system for the running command, built by
// SetupLogging and released by CloseLogging.
var appLogger *logging.Logger

// BindCommandFlags binds the invoked command's own flags to their viper keys.
// Bound at run time, not registration time: predict and sweep share flag names
// and only the invoked command's flag instances carry the parsed values.
func BindCommandFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, flag := range keys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			return fmt.Errorf("unknown flag %q for command %s", flag, cmd.Name())
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	viper.SetEnvPrefix("AKAYLEE_FOLD")
	viper.AutomaticEnv()

	viper.SetDefault("log_max_files", 10)
	viper.SetDefault("log_max_size", 100*1024*1024)

	return nil
}

// SetupLogging builds the logging system from the resolved configuration:
// level and format from flags, optional timestamped log files with retention
// when a log directory is configured.
func SetupLogging() error {
	if _, err := logrus.ParseLevel(viper.GetString("log_level")); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	format := logging.LogFormat(viper.GetString("log_format"))
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Colors:    format == logging.LogFormatCustom,
	})
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	appLogger = logger
	return nil
}

// CloseLogging flushes the log file and applies retention cleanup.
func CloseLogging() {
	if appLogger == nil {
		return
	}
	appLogger.Close()
	appLogger = nil
}

// commandLogger returns the logrus instance backing the logging system, or
// the standard logger when SetupLogging has not run (engines/check paths).
func commandLogger() *logrus.Logger {
	if appLogger != nil {
		return appLogger.GetLogger()
	}
	return logrus.StandardLogger()
}

// buildEngine constructs and initializes a fold engine from viper settings.
func buildEngine(withSweep bool) (*core.Engine, error) {
	logger := commandLogger()

	adapter := solver.NewCentroidFoldAdapter(logger)
	adapter.BinaryPath = viper.GetString("solver_path")
	adapter.Timeout = viper.GetDuration("timeout")

	provider := solver.NewRNAfoldProvider(logger)
	provider.BinaryPath = viper.GetString("rnafold_path")
	provider.Timeout = viper.GetDuration("timeout")

	engine := core.NewEngine()
	engine.SetLogger(logger)
	engine.SetAdapter(adapter)
	engine.SetProvider(provider)

	config := &core.EngineConfig{
		Workers:      viper.GetInt("workers"),
		Fallback:     viper.GetBool("fallback"),
		WithSweep:    withSweep,
		WithPairProb: viper.GetBool("pair_prob"),
		LogLevel:     viper.GetString("log_level"),
	}
	if err := engine.Initialize(config); err != nil {
		return nil, fmt.Errorf("failed to initialize engine: %w", err)
	}
	return engine, nil
}

// readRecords collects input sequences from --fasta files and/or --seq.
func readRecords() ([]fasta.Record, error) {
	var records []fasta.Record

	for _, path := range viper.GetStringSlice("fasta") {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read FASTA file %s: %w", path, err)
		}
		parsed := fasta.Parse(string(content))
		if len(parsed) == 0 {
			return nil, fmt.Errorf("no sequences found in %s", path)
		}
		records = append(records, parsed...)
	}

	if raw := viper.GetString("seq"); raw != "" {
		records = append(records, fasta.Record{ID: "inline", Seq: raw})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no input: provide --fasta or --seq")
	}
	return records, nil
}
