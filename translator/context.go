// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package translator

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/net/http/httpguts"
)

// maxRequestIDLength bounds request ids taken from headers.
const maxRequestIDLength = 128

type contextInfoKey struct{}

// WithContextInfo returns a copy of ctx carrying info. The translator logs
// info verbatim as additional_info when it reports an unmapped error.
func WithContextInfo(ctx context.Context, info any) context.Context {
	return context.WithValue(ctx, contextInfoKey{}, info)
}

// ContextInfo returns the value attached with WithContextInfo, or nil.
func ContextInfo(ctx context.Context) any {
	return ctx.Value(contextInfoKey{})
}

// RequestInfo is the contextual info attached by RequestIDContext.
type RequestInfo struct {
	RequestID string `json:"request_id"`
}

// RequestIDContext returns middleware that attaches a RequestInfo to each
// request. The id is read from header; a new one is generated when the
// header is empty, too long or contains control characters.
func RequestIDContext(header string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !validRequestID(id) {
				id = uuid.NewString()
			}
			ctx := WithContextInfo(r.Context(), RequestInfo{RequestID: id})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validRequestID(id string) bool {
	return id != "" && len(id) <= maxRequestIDLength && httpguts.ValidHeaderFieldValue(id)
}
