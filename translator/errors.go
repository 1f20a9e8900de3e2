// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package translator

import (
	"fmt"
	"strings"
)

// ErrKind is a string identifying why a configuration was rejected.
type ErrKind string

const (
	// ErrKindMappingsRequired indicates the configuration or its mapping table is absent.
	ErrKindMappingsRequired ErrKind = "mappings_required"
	// ErrKindMappingsNotObject indicates the mapping table is not a key/value object.
	ErrKindMappingsNotObject ErrKind = "mappings_not_object"
	// ErrKindInvalidSchema indicates the mapping table is empty or holds a malformed entry.
	ErrKindInvalidSchema ErrKind = "invalid_schema"
	// ErrKindLoggerIncomplete indicates the supplied logger lacks the Trace, Info and Error capabilities.
	ErrKindLoggerIncomplete ErrKind = "logger_incomplete"
)

// requiredLoggerImplementations is rendered verbatim into the logger error message.
var requiredLoggerImplementations = []string{"logger.trace", "logger.info", "logger.error"}

var kindMessages = map[ErrKind]string{
	ErrKindMappingsRequired:  "errorMappings object is required",
	ErrKindMappingsNotObject: "errorMappings must be an object",
	ErrKindInvalidSchema:     "invalid errorMappings object schema",
	ErrKindLoggerIncomplete: "logger is missing one or more of the required implementations: " +
		strings.Join(requiredLoggerImplementations, ","),
}

// Sentinel configuration errors for use with errors.Is. Errors returned by
// New and by the mappings loader match the sentinel of the same kind. The
// sentinels carry no mutable state; only their kind takes part in matching.
var (
	ErrMappingsRequired  = &ConfigError{kind: ErrKindMappingsRequired}
	ErrMappingsNotObject = &ConfigError{kind: ErrKindMappingsNotObject}
	ErrInvalidSchema     = &ConfigError{kind: ErrKindInvalidSchema}
	ErrLoggerIncomplete  = &ConfigError{kind: ErrKindLoggerIncomplete}
)

// ConfigError is returned when a translator configuration is rejected.
// Error returns only the fixed message for the kind; Details carries
// diagnostics such as the offending mapping keys.
type ConfigError struct {
	kind    ErrKind
	details []string
}

// NewConfigError creates a ConfigError of the given kind with optional details.
func NewConfigError(kind ErrKind, details ...string) *ConfigError {
	return &ConfigError{kind: kind, details: details}
}

// Kind reports why the configuration was rejected.
func (e *ConfigError) Kind() ErrKind {
	return e.kind
}

// Details returns a copy of the diagnostics attached to the error.
func (e *ConfigError) Details() []string {
	return append([]string(nil), e.details...)
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if msg, ok := kindMessages[e.kind]; ok {
		return msg
	}
	return fmt.Sprintf("invalid configuration (%s)", e.kind)
}

// Is reports whether target is a ConfigError of the same kind.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	return ok && t.kind == e.kind
}
