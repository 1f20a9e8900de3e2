// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package translator

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
	"strings"

	"github.com/stacklok/toolhive-errtranslate/httperr"
)

const (
	// BadRequestMessage is written for request bodies that are not valid JSON.
	BadRequestMessage = "Request body must be in JSON syntax."
	// InternalErrorMessage is written for errors with no mapping.
	InternalErrorMessage = "Server Error"

	jsonSyntaxMarker = "in JSON at position"
)

var (
	defaultBadRequest    = Mapping{Code: http.StatusBadRequest, Message: BadRequestMessage}
	defaultInternalError = Mapping{Code: http.StatusInternalServerError, Message: InternalErrorMessage}
)

// ErrorHandlerFunc is the shape of a pipeline error handler. next is the
// remainder of the chain; Translator.Handle never calls it.
type ErrorHandlerFunc func(err error, w http.ResponseWriter, r *http.Request, next http.Handler)

// HandlerFunc is an HTTP handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Translator converts errors into JSON HTTP responses using a fixed
// mapping table. It holds no mutable state and is safe for concurrent use.
type Translator struct {
	mappings Mappings
	logger   Logger
}

// Resolution is the outcome of resolving an error against the mapping table.
type Resolution struct {
	// Key is the text the error was looked up by.
	Key string
	// Code is the HTTP status to write.
	Code int
	// Message is the body message to write.
	Message string
	// Unexpected is set when the error resolved to a 500 that was not a
	// JSON syntax failure. Such errors are reported to the logger.
	Unexpected bool
}

// New validates cfg and returns a Translator bound to a copy of its mapping
// table. Later changes to cfg.Mappings do not affect the Translator.
//
// Validation fails with a *ConfigError, checked in this order: missing
// mappings, empty or malformed mappings, unusable logger.
func New(cfg *Config) (*Translator, error) {
	logger, err := validateConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Translator{
		mappings: maps.Clone(cfg.Mappings),
		logger:   logger,
	}, nil
}

// Mappings returns a copy of the mapping table.
func (t *Translator) Mappings() Mappings {
	return maps.Clone(t.mappings)
}

// Resolve determines the response for err without writing anything.
//
// An explicit mapping with code 500 is treated like an unmapped error: it
// is replaced by the bad request response when err is a JSON syntax error,
// and is otherwise flagged as Unexpected.
func (t *Translator) Resolve(err error) Resolution {
	key := lookupKey(err)

	candidate, ok := t.mappings[key]
	if !ok {
		candidate = defaultInternalError
	}

	res := Resolution{Key: key, Code: candidate.Code, Message: candidate.Message}
	if candidate.Code != http.StatusInternalServerError {
		return res
	}

	if isJSONSyntaxError(err) {
		res.Code = defaultBadRequest.Code
		res.Message = defaultBadRequest.Message
		return res
	}

	res.Unexpected = true
	return res
}

// Handle resolves err, logs it when unexpected, and writes the response.
// It matches ErrorHandlerFunc. next is ignored; the pipeline ends here.
func (t *Translator) Handle(err error, w http.ResponseWriter, r *http.Request, _ http.Handler) {
	res := t.Resolve(err)

	if res.Unexpected && t.logger != nil {
		var info any
		if r != nil {
			info = ContextInfo(r.Context())
		}
		t.logger.Error(LogEntry{Message: res.Key, AdditionalInfo: info})
	}

	if werr := httperr.WriteJSON(w, res.Code, res.Message); werr != nil && t.logger != nil {
		t.logger.Trace(LogEntry{Message: werr.Error()})
	}
}

// Wrap adapts an error-returning handler into an http.Handler whose
// errors are translated by t.
func (t *Translator) Wrap(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			t.Handle(err, w, r, nil)
		}
	})
}

// legacyMessager is implemented by errors that carry their identifier
// outside of Error().
type legacyMessager interface {
	Msg() string
}

func lookupKey(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	var lm legacyMessager
	if errors.As(err, &lm) {
		return lm.Msg()
	}
	return ""
}

func isJSONSyntaxError(err error) bool {
	var se *json.SyntaxError
	if !errors.As(err, &se) {
		return false
	}
	return strings.Contains(err.Error(), jsonSyntaxMarker)
}
