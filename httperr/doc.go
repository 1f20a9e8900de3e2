// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr writes the JSON envelope used for error responses.

# Basic Usage

	if err := httperr.WriteJSON(w, http.StatusNotFound, "No such user."); err != nil {
		// the status line has already been sent
	}

The response carries Content-Type application/json and the body:

	{"message":"No such user."}
*/
package httperr
