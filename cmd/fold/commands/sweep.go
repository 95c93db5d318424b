/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sweep.go
Description: Sweep command implementation for Akaylee Fold. Runs the canonical
gamma/engine parameter sweep for each input sequence with per-record fault
isolation and JSON output.
*/

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/kleascm/akaylee-fold/pkg/interfaces"
	"github.com/spf13/cobra"
)

// RunSweep executes the canonical 30-configuration parameter sweep
func RunSweep(cmd *cobra.Command, args []string) error {
	fmt.Println("🧬 Akaylee Fold - Parameter Sweep")
	fmt.Println("=================================")

	if err := BindCommandFlags(cmd, map[string]string{
		"fasta":    "fasta",
		"seq":      "seq",
		"workers":  "workers",
		"fallback": "fallback",
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

	records, err := readRecords()
	if err != nil {
		return err
	}

	engine, err := buildEngine(false)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]*interfaces.FoldResult, 0, len(records))
	for _, rec := range records {
		start := time.Now()
		result, err := engine.Sweep(ctx, rec.ID, rec.Seq)
		if err != nil {
			result = &interfaces.FoldResult{
				SeqID:  rec.ID,
				Length: len(rec.Seq),
				Error:  err.Error(),
			}
		}
		errored := 0
		for _, record := range result.Sweep {
			if record.Error != "" {
				errored++
			}
		}
		appLogger.LogSweep(rec.ID, len(result.Sweep), errored, time.Since(start), nil)
		results = append(results, result)
	}

	return emitResults("sweep", results)
}
