/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: predict.go
Description: Predict command implementation for Akaylee Fold. Estimates the
consensus secondary structure of each input sequence under one weighting
configuration, with per-sequence error isolation and JSON output.
*/

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kleascm/akaylee-fold/pkg/fasta"
	"github.com/kleascm/akaylee-fold/pkg/interfaces"
	"github.com/kleascm/akaylee-fold/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunPredict executes the single-configuration prediction flow
func RunPredict(cmd *cobra.Command, args []string) error {
	if err := BindCommandFlags(cmd, map[string]string{
		"fasta":       "fasta",
		"seq":         "seq",
		"gamma":       "gamma",
		"engine":      "engine",
		"pair_weight": "pair-weight",
		"pair_prob":   "pair-prob",
		"with_sweep":  "with-sweep",
	}); err != nil {
		return err
	}
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return err
	}
	defer CloseLogging()

	engineName, err := interfaces.ParseEngine(viper.GetString("engine"))
	if err != nil {
		return err
	}
	config := interfaces.FoldConfig{
		Gamma:      viper.GetFloat64("gamma"),
		Engine:     engineName,
		PairWeight: viper.GetFloat64("pair_weight"),
	}

	records, err := readRecords()
	if err != nil {
		return err
	}

	engine, err := buildEngine(viper.GetBool("with_sweep"))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Per-sequence isolation: a sequence that fails (invalid alphabet,
	// model unavailable) yields an error record, not an aborted run.
	results := make([]*interfaces.FoldResult, 0, len(records))
	for _, rec := range records {
		appLogger.LogFoldStart(rec.ID, len(rec.Seq), map[string]interface{}{
			"gamma":  config.Gamma,
			"engine": config.Engine.String(),
		})
		result, err := engine.Predict(ctx, rec.ID, rec.Seq, config)
		if err != nil {
			result = &interfaces.FoldResult{
				SeqID:  rec.ID,
				Length: len(rec.Seq),
				Error:  err.Error(),
			}
		}
		results = append(results, result)
	}

	return emitResults("predict", results)
}

// emitResults writes results as indented JSON to stdout and, when an output
// directory is configured, to per-sequence result files.
func emitResults(resultType string, results []*interfaces.FoldResult) error {
	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))

	outputDir := viper.GetString("output_dir")
	if outputDir == "" {
		return nil
	}
	for _, result := range results {
		path, err := utils.WriteResult(outputDir, resultType, fasta.SafeID(result.SeqID), result)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	}
	return nil
}
