// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package translator

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

// Mapping is the response an error identifier translates to.
type Mapping struct {
	// Code is the HTTP status written for the error.
	Code int `json:"code" yaml:"code" validate:"gte=100,lte=599"`
	// Message is written as the "message" field of the JSON body.
	Message string `json:"message" yaml:"message"`
}

// Mappings maps an error message to its response.
//
// Keys are matched against the error's text, so two unrelated errors that
// happen to share a message resolve identically.
type Mappings map[string]Mapping

// Config configures a Translator.
type Config struct {
	// Mappings is the mapping table. It is required and must not be empty.
	Mappings Mappings `json:"errorMappings" yaml:"errorMappings"`

	// Logger receives unmapped errors. It is optional. Accepted values are
	// a Logger implementation, *slog.Logger, *zap.Logger,
	// *zap.SugaredLogger or logr.Logger.
	Logger any `json:"-" yaml:"-"`
}

var mappingValidator = validator.New(validator.WithRequiredStructEnabled())

// validateConfig checks cfg in a fixed order and returns the resolved
// logger. The first failing rule wins.
func validateConfig(cfg *Config) (Logger, error) {
	if cfg == nil || cfg.Mappings == nil {
		return nil, NewConfigError(ErrKindMappingsRequired)
	}

	if err := validateMappings(cfg.Mappings); err != nil {
		return nil, err
	}

	return resolveLogger(cfg.Logger)
}

func validateMappings(m Mappings) error {
	if len(m) == 0 {
		return NewConfigError(ErrKindInvalidSchema, "errorMappings has no entries")
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var details []string
	for _, k := range keys {
		if err := mappingValidator.Struct(m[k]); err != nil {
			details = append(details, fmt.Sprintf("%q: %v", k, err))
		}
	}
	if len(details) > 0 {
		return NewConfigError(ErrKindInvalidSchema, details...)
	}
	return nil
}
