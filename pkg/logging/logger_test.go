/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Tests for the logging system: configuration validation, file
output creation and retention cleanup.
*/

package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(dir string) *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatJSON,
		OutputDir: dir,
		MaxFiles:  5,
		MaxSize:   1024 * 1024,
		Timestamp: true,
	}
}

func TestLoggerConfigValidate(t *testing.T) {
	require.NoError(t, validConfig(t.TempDir()).Validate())

	// Stdout-only: no output dir means the retention settings are moot.
	stdoutOnly := validConfig("")
	stdoutOnly.MaxFiles = 0
	stdoutOnly.MaxSize = 0
	require.NoError(t, stdoutOnly.Validate())

	cases := []struct {
		name   string
		mutate func(*LoggerConfig)
	}{
		{"non-positive max files", func(c *LoggerConfig) { c.MaxFiles = 0 }},
		{"non-positive max size", func(c *LoggerConfig) { c.MaxSize = 0 }},
		{"unknown format", func(c *LoggerConfig) { c.Format = "xml" }},
		{"unknown level", func(c *LoggerConfig) { c.Level = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig(t.TempDir())
			tc.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestNewLoggerCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(validConfig(dir))
	require.NoError(t, err)
	defer logger.Close()

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-fold_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.NotNil(t, logger.GetLogger())
}

func TestNewLoggerStdoutOnly(t *testing.T) {
	logger, err := NewLogger(validConfig(""))
	require.NoError(t, err)
	defer logger.Close()
	assert.Nil(t, logger.fileHandle)
	assert.NotNil(t, logger.GetLogger())
}

func TestNewLoggerRejectsUnknownFormat(t *testing.T) {
	c := validConfig(t.TempDir())
	c.Format = "xml"
	_, err := NewLogger(c)
	assert.Error(t, err)
}

func TestLoggerFoldHelpers(t *testing.T) {
	logger, err := NewLogger(validConfig(t.TempDir()))
	require.NoError(t, err)
	defer logger.Close()

	// Helpers must accept nil field maps.
	logger.LogFoldStart("seq1", 42, nil)
	logger.LogSolverCall(6.0, "BL", 0, nil)
	logger.LogFallback(6.0, "BL", "solver timeout", nil)
	logger.LogSweep("seq1", 30, 2, 0, map[string]interface{}{"mode": "diagnostic"})
}
