/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces_test.go
Description: Tests for the engine enumeration and the canonical sweep
configuration set.
*/

package interfaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineRoundTrip(t *testing.T) {
	for _, e := range Engines {
		parsed, err := ParseEngine(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, parsed)
	}
}

func TestParseEngineRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "bl", "contrafold", "ViennaRNA"} {
		_, err := ParseEngine(name)
		assert.Error(t, err, "expected rejection of %q", name)
	}
}

func TestDefaultFoldConfig(t *testing.T) {
	config := DefaultFoldConfig()
	assert.Equal(t, 6.0, config.Gamma)
	assert.Equal(t, EngineBL, config.Engine)
	assert.Equal(t, DefaultPairWeight, config.PairWeight)
}

func TestSweepConfigsCrossProduct(t *testing.T) {
	configs := SweepConfigs()
	require.Len(t, configs, 30)

	// Gamma outer, engine inner, all at the default pair weight.
	idx := 0
	for _, gamma := range SweepGammas {
		for _, engine := range Engines {
			assert.Equal(t, gamma, configs[idx].Gamma)
			assert.Equal(t, engine, configs[idx].Engine)
			assert.Equal(t, DefaultPairWeight, configs[idx].PairWeight)
			idx++
		}
	}
}
