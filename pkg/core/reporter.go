/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reporter.go
Description: Reporter interface and implementations for Akaylee Fold sweep
telemetry. Allows the sweep driver to notify listeners of per-configuration
outcomes without coupling evaluation to any output format.
*/

package core

import (
	"github.com/kleascm/akaylee-fold/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// Reporter defines the interface for sweep telemetry hooks.
type Reporter interface {
	// OnRecord is called after one sweep configuration is evaluated,
	// whether it produced a structure or an error.
	OnRecord(record *interfaces.SweepRecord)
}

// LoggerReporter logs sweep records using the standard logger.
type LoggerReporter struct {
	logger *logrus.Logger
}

// NewLoggerReporter creates a new LoggerReporter.
func NewLoggerReporter(logger *logrus.Logger) *LoggerReporter {
	return &LoggerReporter{logger: logger}
}

// OnRecord logs one sweep evaluation outcome.
func (r *LoggerReporter) OnRecord(record *interfaces.SweepRecord) {
	fields := logrus.Fields{
		"record":   record.ID,
		"gamma":    record.Gamma,
		"engine":   record.Engine,
		"duration": record.Duration,
	}
	if record.Error != "" {
		r.logger.WithFields(fields).WithField("error", record.Error).Warn("Sweep record failed")
		return
	}
	r.logger.WithFields(fields).Info("Sweep record evaluated")
}
