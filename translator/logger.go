// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package translator

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=logger.go -destination=mocks/mock_logger.go -package=mocks Logger

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/go-logr/logr"
	"go.uber.org/zap"

	"github.com/stacklok/toolhive-errtranslate/logging"
)

// additionalInfoKey is the structured field name carrying contextual info.
const additionalInfoKey = "additional_info"

// LogEntry is the payload handed to a Logger.
type LogEntry struct {
	Message        string `json:"message"`
	AdditionalInfo any    `json:"additional_info"`
}

// Logger is the capability set a translator logs through.
// All three methods must be present.
type Logger interface {
	Trace(entry LogEntry)
	Info(entry LogEntry)
	Error(entry LogEntry)
}

// resolveLogger turns a configured logger value into a Logger. A nil value
// means logging is disabled.
func resolveLogger(v any) (Logger, error) {
	if v == nil {
		return nil, nil
	}
	if isNilPointer(v) {
		return nil, NewConfigError(ErrKindLoggerIncomplete, "logger is a nil pointer")
	}

	switch l := v.(type) {
	case Logger:
		return l, nil
	case *slog.Logger:
		return slogLogger{l: l}, nil
	case *zap.SugaredLogger:
		return zapLogger{l: l}, nil
	case *zap.Logger:
		return zapLogger{l: l.Sugar()}, nil
	case logr.Logger:
		return logrLogger{l: l}, nil
	default:
		return nil, NewConfigError(ErrKindLoggerIncomplete, reflect.TypeOf(v).String())
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Trace(e LogEntry) {
	s.l.Log(context.Background(), logging.LevelTrace, e.Message, additionalInfoKey, e.AdditionalInfo)
}

func (s slogLogger) Info(e LogEntry) {
	s.l.Info(e.Message, additionalInfoKey, e.AdditionalInfo)
}

func (s slogLogger) Error(e LogEntry) {
	s.l.Error(e.Message, additionalInfoKey, e.AdditionalInfo)
}

// zapLogger maps Trace to Debug; zap has no lower level.
type zapLogger struct {
	l *zap.SugaredLogger
}

func (z zapLogger) Trace(e LogEntry) {
	z.l.Debugw(e.Message, additionalInfoKey, e.AdditionalInfo)
}

func (z zapLogger) Info(e LogEntry) {
	z.l.Infow(e.Message, additionalInfoKey, e.AdditionalInfo)
}

func (z zapLogger) Error(e LogEntry) {
	z.l.Errorw(e.Message, additionalInfoKey, e.AdditionalInfo)
}

type logrLogger struct {
	l logr.Logger
}

func (g logrLogger) Trace(e LogEntry) {
	g.l.V(2).Info(e.Message, additionalInfoKey, e.AdditionalInfo)
}

func (g logrLogger) Info(e LogEntry) {
	g.l.Info(e.Message, additionalInfoKey, e.AdditionalInfo)
}

func (g logrLogger) Error(e LogEntry) {
	g.l.Error(nil, e.Message, additionalInfoKey, e.AdditionalInfo)
}
