// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package translator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var errNoBody = errors.New("request has no body")

// SyntaxError reports malformed JSON input. Its message ends with
// "in JSON at position N", which is what the translator keys its bad
// request response on.
type SyntaxError struct {
	err *json.SyntaxError
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s %s %d", e.err.Error(), jsonSyntaxMarker, e.err.Offset)
}

// Unwrap returns the underlying *json.SyntaxError.
func (e *SyntaxError) Unwrap() error {
	return e.err
}

// Offset is the byte offset at which the input became invalid.
func (e *SyntaxError) Offset() int64 {
	return e.err.Offset
}

// ParseJSON unmarshals data into v. Malformed input yields a *SyntaxError.
func ParseJSON(data []byte, v any) error {
	return wrapSyntaxError(json.Unmarshal(data, v))
}

// DecodeJSON reads the whole request body and unmarshals it into v with
// ParseJSON, so truncated bodies and bodies with data after the first value
// yield a *SyntaxError exactly as ParseJSON would. Other decoding failures
// are returned wrapped.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errNoBody
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	return ParseJSON(data, v)
}

func wrapSyntaxError(err error) error {
	if err == nil {
		return nil
	}
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return &SyntaxError{err: se}
	}
	return fmt.Errorf("failed to decode JSON: %w", err)
}
