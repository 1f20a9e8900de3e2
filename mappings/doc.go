// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package mappings loads translator mapping tables from YAML or JSON
documents.

A document holds the table under errorMappings:

	errorMappings:
	  user not found:
	    code: 404
	    message: No such user.
	  quota exceeded:
	    code: 429
	    message: Slow down.

The table is validated against an embedded JSON Schema: it must be a
non-empty object whose entries have an integer code between 100 and 599
and a string message.

# Sources

  - [Parse] reads a document from memory.
  - [LoadFile] reads a document from disk.
  - [LoadFromEnv] reads the file named by ERRTRANSLATE_MAPPINGS_FILE.
  - [Discover] searches the XDG config directories for errtranslate/mappings.yaml.
  - [Load] uses the environment variable when set and Discover otherwise.

Each returns a *translator.Config without a logger; set Config.Logger
before passing it to translator.New.

# Errors

Validation failures wrap a *translator.ConfigError. The file loaders
prefix the message with the file path, so match them with errors.Is
against translator.ErrMappingsRequired, translator.ErrMappingsNotObject
or translator.ErrInvalidSchema instead of comparing error strings.
*/
package mappings
