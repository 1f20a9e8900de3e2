// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package translator converts errors raised while handling an HTTP request
into JSON error responses, using a mapping table supplied once at startup.

# Basic Usage

Build a Translator from a mapping table keyed by error message:

	t, err := translator.New(&translator.Config{
		Mappings: translator.Mappings{
			"user not found": {Code: http.StatusNotFound, Message: "No such user."},
		},
		Logger: logging.New(),
	})
	if err != nil {
		log.Fatal(err)
	}

Wrap handlers that return errors:

	mux.Handle("/users", t.Wrap(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("user not found")
	}))

Every translated response has the body {"message": "..."}.

# Resolution Rules

  - The lookup key is err.Error(). If that is empty and the error has a
    Msg() string method, Msg() is used instead.
  - A key present in the table resolves to its Mapping. Anything else
    resolves to 500 "Server Error".
  - If the resolved code is 500 and the error is a JSON syntax error whose
    message contains "in JSON at position", the response is 400
    "Request body must be in JSON syntax." instead. Use DecodeJSON or
    ParseJSON to produce such errors.
  - Any other 500 is reported to the logger as a LogEntry carrying the key
    and the request's contextual info (see WithContextInfo).

An explicit mapping to code 500 follows the same rules as an unmapped error.

# Configuration Errors

New returns a *ConfigError whose Kind identifies the failed rule. Compare
with errors.Is against ErrMappingsRequired, ErrMappingsNotObject,
ErrInvalidSchema or ErrLoggerIncomplete.

# Loggers

Config.Logger accepts any Logger implementation as well as *slog.Logger,
*zap.Logger, *zap.SugaredLogger and logr.Logger. Other values are rejected
with ErrLoggerIncomplete. A nil logger disables logging.
*/
package translator
