/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: centroidfold.go
Description: External solver adapter for the Akaylee Fold engine. Invokes the
centroid_fold binary with a weighting configuration, enforces a hard wall-clock
budget with guaranteed process cleanup, and parses the text output into a
validated dot-bracket structure.
*/

package solver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/kleascm/akaylee-fold/pkg/interfaces"
	"github.com/kleascm/akaylee-fold/pkg/rna"
	"github.com/sirupsen/logrus"
)

// DefaultBinary is the solver binary name resolved via PATH.
const DefaultBinary = "centroid_fold"

// DefaultTimeout is the per-invocation wall-clock budget. Generous on
// purpose: the sweep enumerates the adapter 30 times and a slow engine on a
// long sequence legitimately takes minutes.
const DefaultTimeout = 5 * time.Minute

// maxDiagnosticLen bounds stderr/raw-output excerpts carried in errors.
const maxDiagnosticLen = 200

// CentroidFoldAdapter runs the centroid_fold binary for one configuration.
// Safe for concurrent use: every invocation gets its own working directory
// and process.
type CentroidFoldAdapter struct {
	BinaryPath string
	Timeout    time.Duration
	logger     *logrus.Logger
}

// NewCentroidFoldAdapter creates an adapter with the default binary name and
// timeout.
func NewCentroidFoldAdapter(logger *logrus.Logger) *CentroidFoldAdapter {
	if logger == nil {
		logger = logrus.New()
	}
	return &CentroidFoldAdapter{
		BinaryPath: DefaultBinary,
		Timeout:    DefaultTimeout,
		logger:     logger,
	}
}

// Invoke runs the solver for one configuration and returns the parsed
// structure. Every failure is explicit: *SolverError with one of the four
// kinds, never a silent fallback. The process is killed, never leaked, when
// the budget expires.
func (a *CentroidFoldAdapter) Invoke(ctx context.Context, seq rna.Sequence, config interfaces.FoldConfig) (rna.Structure, error) {
	workDir, err := os.MkdirTemp("", "akaylee-fold-*")
	if err != nil {
		return "", &SolverError{Kind: FailureUnavailable, Message: "workdir: " + err.Error()}
	}
	defer os.RemoveAll(workDir)

	inputPath := filepath.Join(workDir, "input.fa")
	fasta := fmt.Sprintf(">seq\n%s\n", seq)
	if err := os.WriteFile(inputPath, []byte(fasta), 0644); err != nil {
		return "", &SolverError{Kind: FailureUnavailable, Message: "write input: " + err.Error()}
	}

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// CommandContext kills the process when the deadline fires, reclaiming
	// it before Run returns.
	cmd := exec.CommandContext(runCtx, a.BinaryPath, a.buildArgs(config, inputPath)...)
	cmd.Dir = workDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	a.logger.WithFields(logrus.Fields{
		"gamma":    config.Gamma,
		"engine":   config.Engine.String(),
		"duration": time.Since(start),
	}).Debug("Solver invoked")

	if runErr != nil {
		return "", a.classify(runErr, runCtx, &stderr, timeout)
	}

	structure, perr := ParseOutput(stdout.String(), seq.Len())
	if perr != nil {
		return "", perr
	}
	return structure, nil
}

// buildArgs assembles the solver command line. BL is the binary's own default
// engine so it gets no flag; the pair weight is only passed when it differs
// from the binary default.
func (a *CentroidFoldAdapter) buildArgs(config interfaces.FoldConfig, inputPath string) []string {
	args := []string{"-g", strconv.FormatFloat(config.Gamma, 'g', -1, 64)}
	switch config.Engine {
	case interfaces.EngineCONTRAfold, interfaces.EngineRNAfold:
		args = append(args, "--engine", config.Engine.String())
	}
	if config.PairWeight != interfaces.DefaultPairWeight {
		args = append(args, "--bp-weight", strconv.FormatFloat(config.PairWeight, 'g', -1, 64))
	}
	return append(args, inputPath)
}

// classify maps a process error onto the failure taxonomy.
func (a *CentroidFoldAdapter) classify(runErr error, runCtx context.Context, stderr *bytes.Buffer, timeout time.Duration) *SolverError {
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return &SolverError{
			Kind:    FailureTimeout,
			Message: fmt.Sprintf("%s exceeded %s budget", a.BinaryPath, timeout),
		}
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return &SolverError{
			Kind:    FailureExit,
			Code:    exitErr.ExitCode(),
			Message: truncate(strings.TrimSpace(stderr.String()), maxDiagnosticLen),
		}
	}
	// exec.Error (binary not found), permission problems, anything that
	// prevented the process from starting.
	return &SolverError{Kind: FailureUnavailable, Message: runErr.Error()}
}

// ParseOutput locates the structure in solver text output. The expected shape
// is a FASTA-style header line, the sequence line, then a structure-plus-score
// line; the structure is the first whitespace-delimited token of the first
// non-header line consisting solely of structure alphabet characters and
// matching the sequence length.
func ParseOutput(output string, seqLen int) (rna.Structure, *SolverError) {
	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, ">") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		token := fields[0]
		if !isStructureToken(token) || len(token) != seqLen {
			continue
		}
		s := rna.Structure(token)
		if err := s.Validate(); err != nil {
			return "", &SolverError{
				Kind:    FailureParse,
				Message: err.Error(),
				Raw:     truncate(output, maxDiagnosticLen),
			}
		}
		return s, nil
	}
	return "", &SolverError{
		Kind:    FailureParse,
		Message: "no structure line in solver output",
		Raw:     truncate(output, maxDiagnosticLen),
	}
}

func isStructureToken(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '(', ')', '.':
		default:
			return false
		}
	}
	return true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
