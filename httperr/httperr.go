// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package httperr writes JSON error responses.
package httperr

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Body is the JSON envelope of an error response.
type Body struct {
	Message string `json:"message"`
}

// WriteJSON writes code and a Body holding message to w.
// The status is committed before encoding, so an encoding error can only
// be reported, not turned into a different response.
func WriteJSON(w http.ResponseWriter, code int, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(Body{Message: message}); err != nil {
		return fmt.Errorf("failed to write error response: %w", err)
	}
	return nil
}
