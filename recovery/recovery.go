// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stacklok/toolhive-errtranslate/translator"
)

// Middleware returns HTTP middleware that recovers from panics and passes
// the panic, as an error, to handle. Panics with an error value are passed
// through unchanged; any other value is formatted with %v.
//
// handle receives a nil next handler, as with translator.Wrap: the handler
// that panicked is never run again.
//
// http.ErrAbortHandler is re-panicked so the server can abort the response.
func Middleware(handle translator.ErrorHandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				err := panicError(v)
				if errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}
				handle(err, w, r, nil)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func panicError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("%v", v)
}
