// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/toolhive-errtranslate/env"
)

// UnstructuredLogsEnv selects console output for zap loggers when unset or true.
const UnstructuredLogsEnv = "UNSTRUCTURED_LOGS"

// NewZap builds a zap logger. Console output with kitchen-clock timestamps
// on stderr is used unless UNSTRUCTURED_LOGS is "false", in which case JSON
// goes to stdout. debug lowers the level from INFO to DEBUG.
func NewZap(envReader env.Reader, debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if unstructuredLogs(envReader) {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		cfg.OutputPaths = []string{"stderr"}
		cfg.DisableStacktrace = true
		cfg.DisableCaller = true
	} else {
		cfg = zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
	}

	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return logger, nil
}

// InitializeZap builds a logger with [NewZap] and installs it as the zap
// global, so zap.L and zap.S return it.
func InitializeZap(envReader env.Reader, debug bool) error {
	logger, err := NewZap(envReader, debug)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// NewLogr returns a [logr.Logger] backed by z.
func NewLogr(z *zap.Logger) logr.Logger {
	return zapr.NewLogger(z)
}

func unstructuredLogs(envReader env.Reader) bool {
	v, err := strconv.ParseBool(envReader.Getenv(UnstructuredLogsEnv))
	if err != nil {
		// unset or unparsable
		return true
	}
	return v
}
