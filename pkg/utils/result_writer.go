/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: result_writer.go
Description: Utility for writing fold and sweep results to the output
directory. Handles timestamped, type-specific subdirectory naming, ensures
directories exist and writes indented JSON files for easy analysis.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteResult writes a result to the output directory under a type-specific
// subdirectory with a timestamped filename, and returns the file path.
func WriteResult(outputDir, resultType, seqID string, result interface{}) (string, error) {
	dir := filepath.Join(outputDir, resultType)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	// Filename: 2024-06-11_01-30-00_predict_trna.json
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s_%s.json", timestamp, resultType, seqID)
	path := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write result file: %w", err)
	}

	return path, nil
}
