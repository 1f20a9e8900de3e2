// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package mappings

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/toolhive-errtranslate/env/mocks"
	"github.com/stacklok/toolhive-errtranslate/translator"
)

const validYAML = `
errorMappings:
  error1:
    code: 400
    message: stam1
  error2:
    code: 401
    message: stam2
`

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		document    string
		expectedErr error
	}{
		{"empty document", "", translator.ErrMappingsRequired},
		{"missing errorMappings", `{}`, translator.ErrMappingsRequired},
		{"null errorMappings", `{"errorMappings": null}`, translator.ErrMappingsRequired},
		{"empty string errorMappings", `{"errorMappings": ""}`, translator.ErrMappingsRequired},
		{"scalar document", `stam`, translator.ErrMappingsRequired},
		{"string errorMappings", `{"errorMappings": "dasd"}`, translator.ErrMappingsNotObject},
		{"number errorMappings", `{"errorMappings": 12}`, translator.ErrMappingsNotObject},
		{"true errorMappings", `{"errorMappings": true}`, translator.ErrMappingsNotObject},
		{"empty object", `{"errorMappings": {}}`, translator.ErrInvalidSchema},
		{"array", `{"errorMappings": [{"code": 400, "message": "a"}]}`, translator.ErrInvalidSchema},
		{"entry is a string", `{"errorMappings": {"a": "b"}}`, translator.ErrInvalidSchema},
		{"code is a string", `{"errorMappings": {"a": {"code": "400", "message": "b"}}}`, translator.ErrInvalidSchema},
		{"code is fractional", `{"errorMappings": {"a": {"code": 400.5, "message": "b"}}}`, translator.ErrInvalidSchema},
		{"code out of range", `{"errorMappings": {"a": {"code": 42, "message": "b"}}}`, translator.ErrInvalidSchema},
		{"message is a number", `{"errorMappings": {"a": {"code": 400, "message": 1}}}`, translator.ErrInvalidSchema},
		{"message missing", `{"errorMappings": {"a": {"code": 400}}}`, translator.ErrInvalidSchema},
		{"one bad entry among good", `{"errorMappings": {"a": {"code": 400, "message": "b"}, "c": {"code": 400}}}`, translator.ErrInvalidSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := Parse([]byte(tt.document))

			require.Nil(t, cfg)
			require.ErrorIs(t, err, tt.expectedErr)

			var cfgErr *translator.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.expectedErr.Error(), cfgErr.Error())
		})
	}
}

func TestParse_InvalidSchemaDetails(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`{"errorMappings": {"a": {"code": "400", "message": "b"}}}`))

	var cfgErr *translator.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "invalid errorMappings object schema", cfgErr.Error())
	assert.NotEmpty(t, cfgErr.Details())
}

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	expected := translator.Mappings{
		"error1": {Code: http.StatusBadRequest, Message: "stam1"},
		"error2": {Code: http.StatusUnauthorized, Message: "stam2"},
	}

	tests := []struct {
		name     string
		document string
	}{
		{"yaml", validYAML},
		{"json", `{"errorMappings": {"error1": {"code": 400, "message": "stam1"}, "error2": {"code": 401, "message": "stam2"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := Parse([]byte(tt.document))
			require.NoError(t, err)
			assert.Equal(t, expected, cfg.Mappings)
			assert.Nil(t, cfg.Logger)

			_, err = translator.New(cfg)
			require.NoError(t, err)
		})
	}
}

func TestParse_NumericKeys(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("errorMappings:\n  404:\n    code: 404\n    message: Not here.\n"))

	require.NoError(t, err)
	assert.Equal(t, translator.Mapping{Code: http.StatusNotFound, Message: "Not here."}, cfg.Mappings["404"])
}

func TestParse_MalformedDocument(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("errorMappings: [unclosed"))

	require.Error(t, err)
	var cfgErr *translator.ConfigError
	assert.False(t, errors.As(err, &cfgErr))
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadFile(writeFile(t, validYAML))
		require.NoError(t, err)
		assert.Len(t, cfg.Mappings, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid file keeps error kind", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, `errorMappings: {}`)
		_, err := LoadFile(path)
		require.ErrorIs(t, err, translator.ErrInvalidSchema)
		assert.Equal(t, path+": invalid errorMappings object schema", err.Error())

		var cfgErr *translator.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, translator.ErrKindInvalidSchema, cfgErr.Kind())
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		set     bool
		wantErr error
	}{
		{"unset", "", false, translator.ErrMappingsRequired},
		{"empty", "", true, translator.ErrMappingsRequired},
		{"set", "file", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			value := tt.value
			if value == "file" {
				value = writeFile(t, validYAML)
			}

			mockEnv := mocks.NewMockReader(ctrl)
			mockEnv.EXPECT().LookupEnv(FileEnv).Return(value, tt.set)

			cfg, err := LoadFromEnv(mockEnv)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, cfg.Mappings, 2)
		})
	}
}

func stubSearch(t *testing.T, path string, err error) {
	t.Helper()
	previous := searchConfigFile
	searchConfigFile = func(rel string) (string, error) {
		assert.Equal(t, ConfigFile, rel)
		return path, err
	}
	t.Cleanup(func() { searchConfigFile = previous })
}

func TestDiscover(t *testing.T) { //nolint:paralleltest // Replaces package-level search function
	t.Run("found", func(t *testing.T) { //nolint:paralleltest // Replaces package-level search function
		stubSearch(t, writeFile(t, validYAML), nil)

		cfg, err := Discover()
		require.NoError(t, err)
		assert.Len(t, cfg.Mappings, 2)
	})

	t.Run("not found", func(t *testing.T) { //nolint:paralleltest // Replaces package-level search function
		stubSearch(t, "", errors.New("could not locate"))

		_, err := Discover()
		require.ErrorIs(t, err, translator.ErrMappingsRequired)
	})
}

func TestLoad(t *testing.T) { //nolint:paralleltest // Replaces package-level search function
	t.Run("prefers environment", func(t *testing.T) { //nolint:paralleltest // Replaces package-level search function
		stubSearch(t, "", errors.New("must not be searched"))
		ctrl := gomock.NewController(t)

		mockEnv := mocks.NewMockReader(ctrl)
		mockEnv.EXPECT().LookupEnv(FileEnv).Return(writeFile(t, validYAML), true)

		cfg, err := Load(mockEnv)
		require.NoError(t, err)
		assert.Len(t, cfg.Mappings, 2)
	})

	t.Run("falls back to XDG", func(t *testing.T) { //nolint:paralleltest // Replaces package-level search function
		stubSearch(t, writeFile(t, `{"errorMappings": {"e": {"code": 409, "message": "m"}}}`), nil)
		ctrl := gomock.NewController(t)

		mockEnv := mocks.NewMockReader(ctrl)
		mockEnv.EXPECT().LookupEnv(FileEnv).Return("", false)

		cfg, err := Load(mockEnv)
		require.NoError(t, err)
		assert.Equal(t, translator.Mappings{"e": {Code: http.StatusConflict, Message: "m"}}, cfg.Mappings)
	})
}
