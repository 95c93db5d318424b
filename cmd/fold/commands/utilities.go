/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utilities.go
Description: Utility commands for Akaylee Fold. Lists the available inference
engines and performs built-in self-checks validating solver availability and
output writability.
*/

package commands

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kleascm/akaylee-fold/pkg/interfaces"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ListEngines prints the available inference engines
func ListEngines(cmd *cobra.Command, args []string) {
	fmt.Println("Available inference engines:")
	fmt.Println()
	descriptions := map[interfaces.Engine]string{
		interfaces.EngineBL:         "McCaskill partition function (solver default)",
		interfaces.EngineCONTRAfold: "CONTRAfold probabilistic model",
		interfaces.EngineRNAfold:    "RNAfold-based base-pair probabilities",
	}
	for _, e := range interfaces.Engines {
		fmt.Printf("  %-12s %s\n", e.String(), descriptions[e])
	}
}

// PerformSelfCheck validates the runtime prerequisites
func PerformSelfCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Akaylee Fold - Self Check")
	fmt.Println("============================")

	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	failed := 0

	check := func(name string, err error) {
		if err != nil {
			failed++
			fmt.Printf("  ❌ %s: %v\n", name, err)
			return
		}
		fmt.Printf("  ✅ %s\n", name)
	}

	solverPath := viper.GetString("solver_path")
	_, err := exec.LookPath(solverPath)
	check(fmt.Sprintf("solver binary (%s)", solverPath), err)

	rnafoldPath := viper.GetString("rnafold_path")
	_, err = exec.LookPath(rnafoldPath)
	check(fmt.Sprintf("partition-function binary (%s)", rnafoldPath), err)

	if outputDir := viper.GetString("output_dir"); outputDir != "" {
		check("output directory writable", probeWritable(outputDir))
	}

	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d self-check(s) failed", failed)
	}
	fmt.Println("All checks passed ✨")
	return nil
}

// probeWritable verifies the directory exists (creating it if needed) and
// accepts a test file.
func probeWritable(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".akaylee-fold-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return err
	}
	return os.Remove(probe)
}
