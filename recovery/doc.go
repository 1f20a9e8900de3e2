// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package recovery provides panic recovery middleware for HTTP handlers.
//
// A recovered panic is converted to an error and handed to an error
// handler, normally a translator's Handle method, so panics get the same
// mapped JSON responses as returned errors.
//
// # Basic Usage
//
//	t, err := translator.New(cfg)
//	if err != nil {
//		return err
//	}
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", handler)
//	http.ListenAndServe(":8080", recovery.Middleware(t.Handle)(mux))
package recovery
