// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package mappings

import (
	"fmt"

	"github.com/adrg/xdg"

	"github.com/stacklok/toolhive-errtranslate/env"
	"github.com/stacklok/toolhive-errtranslate/translator"
)

const (
	// FileEnv names the environment variable holding a mappings file path.
	FileEnv = "ERRTRANSLATE_MAPPINGS_FILE"

	// ConfigFile is the path searched for below the XDG config directories.
	ConfigFile = "errtranslate/mappings.yaml"
)

// searchConfigFile is replaced in tests.
var searchConfigFile = xdg.SearchConfigFile

// LoadFromEnv loads the file named by FileEnv. An unset or empty variable
// is reported as translator.ErrMappingsRequired.
func LoadFromEnv(envReader env.Reader) (*translator.Config, error) {
	path, ok := envReader.LookupEnv(FileEnv)
	if !ok || path == "" {
		return nil, fmt.Errorf("%s is not set: %w", FileEnv, translator.ErrMappingsRequired)
	}
	return LoadFile(path)
}

// Discover loads ConfigFile from the first XDG config directory that
// contains it.
func Discover() (*translator.Config, error) {
	path, err := searchConfigFile(ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("no %s in XDG config directories: %w", ConfigFile, translator.ErrMappingsRequired)
	}
	return LoadFile(path)
}

// Load tries LoadFromEnv and falls back to Discover when FileEnv is unset.
func Load(envReader env.Reader) (*translator.Config, error) {
	if path, ok := envReader.LookupEnv(FileEnv); ok && path != "" {
		return LoadFile(path)
	}
	return Discover()
}
