// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging builds the loggers an error translator reports through.

# slog

[New] returns a [log/slog.Logger] with JSON output on stderr, INFO level and
RFC3339 timestamps:

	logger := logging.New()
	logger.Info("translator ready", "mappings", 12)

Options change the defaults:

	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(logging.LevelTrace),
		logging.WithOutput(&buf),
	)

[LevelTrace] is one step below DEBUG and appears as "TRACE" in output. The
translator's Trace capability logs at this level.

# zap and logr

[NewZap] builds a zap logger whose encoding follows the UNSTRUCTURED_LOGS
environment variable, read through an [env.Reader]:

	z, err := logging.NewZap(&env.OSReader{}, false)

[InitializeZap] installs such a logger as the zap global, and [NewLogr]
wraps a zap logger as a [logr.Logger].
*/
package logging
