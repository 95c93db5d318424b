/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces for the Akaylee Fold engine. Defines the core
value types and component interfaces used across all packages to break import
cycles and enable proper modular design.
*/

package interfaces

import (
	"context"
	"fmt"
	"time"

	"github.com/kleascm/akaylee-fold/pkg/rna"
)

// Engine selects the inference engine backing the external structure solver.
// A closed enumeration: invalid engines are a construction-time error, never a
// runtime string-parse failure.
type Engine int

const (
	// EngineBL is the McCaskill partition function model (solver default).
	EngineBL Engine = iota
	// EngineCONTRAfold is the CONTRAfold probabilistic model.
	EngineCONTRAfold
	// EngineRNAfold uses RNAfold-based base-pair probabilities.
	EngineRNAfold
)

// Engines lists all inference engines in canonical sweep order.
var Engines = []Engine{EngineBL, EngineCONTRAfold, EngineRNAfold}

// String returns the engine name as the solver binary expects it.
func (e Engine) String() string {
	switch e {
	case EngineBL:
		return "BL"
	case EngineCONTRAfold:
		return "CONTRAfold"
	case EngineRNAfold:
		return "RNAfold"
	default:
		return fmt.Sprintf("Engine(%d)", int(e))
	}
}

// ParseEngine converts an engine name into an Engine value.
// Returns an error for unknown names.
func ParseEngine(name string) (Engine, error) {
	switch name {
	case "BL":
		return EngineBL, nil
	case "CONTRAfold":
		return EngineCONTRAfold, nil
	case "RNAfold":
		return EngineRNAfold, nil
	default:
		return 0, fmt.Errorf("unknown inference engine: %q (want BL, CONTRAfold or RNAfold)", name)
	}
}

// FoldConfig is an immutable weighting configuration for one estimation.
// Gamma trades off paired-vs-unpaired gain, Engine selects the external
// probability model, PairWeight is passed through to the solver.
type FoldConfig struct {
	Gamma      float64 `json:"gamma"`
	Engine     Engine  `json:"engine"`
	PairWeight float64 `json:"pair_weight"`
}

// DefaultPairWeight is the solver's own base-pair weight default.
const DefaultPairWeight = 2.0

// DefaultFoldConfig returns the configuration used by the original web
// frontend: gamma 6.0, BL engine, pair weight 2.0.
func DefaultFoldConfig() FoldConfig {
	return FoldConfig{Gamma: 6.0, Engine: EngineBL, PairWeight: DefaultPairWeight}
}

// SweepGammas are the ten fixed gamma values of the canonical parameter sweep.
var SweepGammas = []float64{0.5, 1, 2, 4, 6, 8, 16, 32, 64, 128}

// SweepConfigs enumerates the canonical sweep: the cross-product of
// SweepGammas and Engines (gamma outer, engine inner) at DefaultPairWeight,
// 30 configurations total.
func SweepConfigs() []FoldConfig {
	configs := make([]FoldConfig, 0, len(SweepGammas)*len(Engines))
	for _, g := range SweepGammas {
		for _, e := range Engines {
			configs = append(configs, FoldConfig{Gamma: g, Engine: e, PairWeight: DefaultPairWeight})
		}
	}
	return configs
}

// SweepRecord is the outcome of evaluating one configuration inside a sweep.
// Exactly one of Structure and Error is populated in diagnostic mode; in
// fallback mode Error is always empty.
type SweepRecord struct {
	ID        string        `json:"id"`
	Gamma     float64       `json:"gamma"`
	Engine    string        `json:"engine"`
	Structure string        `json:"structure,omitempty"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration_ns"`
}

// FoldResult is the full per-sequence result exposed to callers.
type FoldResult struct {
	SeqID             string        `json:"seq_id"`
	Length            int           `json:"length"`
	MFE               float64       `json:"mfe"`
	MFEStructure      string        `json:"mfe_structure"`
	CentroidStructure string        `json:"centroid_structure"`
	PairProb          []float64     `json:"pair_prob,omitempty"`
	Sweep             []SweepRecord `json:"centroid_sweep,omitempty"`
	Error             string        `json:"error,omitempty"`
}

// Estimator derives a consensus structure from a pairing-probability matrix.
// Estimators are total functions over well-formed inputs: they never fail.
type Estimator interface {
	Estimate(m *rna.PairMatrix, gamma float64) rna.Structure
	Name() string
}

// SolverAdapter invokes the out-of-process structure solver for one
// configuration. Failures are reported as *solver.SolverError values and
// never silently swallowed.
type SolverAdapter interface {
	Invoke(ctx context.Context, seq rna.Sequence, config FoldConfig) (rna.Structure, error)
}

// MatrixProvider wraps the external partition-function engine: given a
// sequence it returns the minimum free energy, the MFE structure and the
// base-pair probability matrix.
type MatrixProvider interface {
	Fold(ctx context.Context, seq rna.Sequence) (mfe float64, mfeStructure string, m *rna.PairMatrix, err error)
}
