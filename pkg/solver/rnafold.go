/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rnafold.go
Description: Probability-matrix provider for the Akaylee Fold engine. Wraps
the external RNAfold partition-function engine: runs it on a sequence and
parses the MFE structure from stdout and the base-pair probabilities from the
dot-plot PostScript it emits.
*/

package solver

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kleascm/akaylee-fold/pkg/rna"
	"github.com/sirupsen/logrus"
)

// DefaultRNAfoldBinary is the partition-function binary resolved via PATH.
const DefaultRNAfoldBinary = "RNAfold"

// mfeLine matches "(((...))). ( -1.20)" style structure-plus-energy lines.
var mfeLine = regexp.MustCompile(`^([().]+)\s+\(\s*(-?\d+(?:\.\d+)?)\s*\)$`)

// uboxLine matches dot-plot entries "i j sqrtp ubox"; the plotted value is
// the square root of the pairing probability.
var uboxLine = regexp.MustCompile(`^(\d+)\s+(\d+)\s+([\d.eE+-]+)\s+ubox$`)

// RNAfoldProvider implements interfaces.MatrixProvider on top of the RNAfold
// binary invoked with partition-function mode enabled.
type RNAfoldProvider struct {
	BinaryPath string
	Timeout    time.Duration
	logger     *logrus.Logger
}

// NewRNAfoldProvider creates a provider with the default binary and timeout.
func NewRNAfoldProvider(logger *logrus.Logger) *RNAfoldProvider {
	if logger == nil {
		logger = logrus.New()
	}
	return &RNAfoldProvider{
		BinaryPath: DefaultRNAfoldBinary,
		Timeout:    DefaultTimeout,
		logger:     logger,
	}
}

// Fold runs RNAfold -p and returns (mfe, mfe structure, pair matrix). All
// failures wrap ErrModelUnavailable: without the probability model the whole
// request is unservable.
func (p *RNAfoldProvider) Fold(ctx context.Context, seq rna.Sequence) (float64, string, *rna.PairMatrix, error) {
	workDir, err := os.MkdirTemp("", "akaylee-fold-pf-*")
	if err != nil {
		return 0, "", nil, fmt.Errorf("%w: workdir: %v", ErrModelUnavailable, err)
	}
	defer os.RemoveAll(workDir)

	inputPath := filepath.Join(workDir, "input.fa")
	if err := os.WriteFile(inputPath, []byte(fmt.Sprintf(">seq\n%s\n", seq)), 0644); err != nil {
		return 0, "", nil, fmt.Errorf("%w: write input: %v", ErrModelUnavailable, err)
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, p.BinaryPath, "-p", "--noPS", inputPath)
	cmd.Dir = workDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return 0, "", nil, fmt.Errorf("%w: %s: %s", ErrModelUnavailable, p.BinaryPath, truncate(msg, maxDiagnosticLen))
	}

	mfe, mfeStructure, err := parseMFE(stdout.String(), seq.Len())
	if err != nil {
		return 0, "", nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	// RNAfold names the dot plot after the FASTA record: seq_dp.ps.
	m, err := parseDotPlot(filepath.Join(workDir, "seq_dp.ps"), seq.Len())
	if err != nil {
		return 0, "", nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	p.logger.WithFields(logrus.Fields{
		"length": seq.Len(),
		"mfe":    mfe,
	}).Debug("Partition function computed")
	return mfe, mfeStructure, m, nil
}

// parseMFE extracts the MFE structure and free energy from RNAfold stdout.
func parseMFE(output string, seqLen int) (float64, string, error) {
	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)
		m := mfeLine.FindStringSubmatch(line)
		if m == nil || len(m[1]) != seqLen {
			continue
		}
		mfe, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		return mfe, m[1], nil
	}
	return 0, "", fmt.Errorf("no MFE line in RNAfold output")
}

// parseDotPlot reads ubox entries from a dot-plot PS file into a PairMatrix.
// Entries are (i, j, sqrt(P(i,j))).
func parseDotPlot(path string, seqLen int) (*rna.PairMatrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dot plot: %v", err)
	}
	m := rna.NewPairMatrix(seqLen)
	for _, raw := range strings.Split(string(data), "\n") {
		fields := uboxLine.FindStringSubmatch(strings.TrimSpace(raw))
		if fields == nil {
			continue
		}
		i, _ := strconv.Atoi(fields[1])
		j, _ := strconv.Atoi(fields[2])
		sqrtP, err := strconv.ParseFloat(fields[3], 64)
		if err != nil || i < 1 || j > seqLen || i >= j {
			continue
		}
		m.Set(i, j, math.Pow(sqrtP, 2))
	}
	return m, nil
}
