// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env abstracts environment variable access so that the mappings
loader and the zap logger factory can be tested without touching the
process environment.

	reader := &env.OSReader{}
	path, ok := reader.LookupEnv("ERRTRANSLATE_MAPPINGS_FILE")

Tests substitute the generated mock in the mocks sub-package:

	mock := mocks.NewMockReader(gomock.NewController(t))
	mock.EXPECT().LookupEnv("ERRTRANSLATE_MAPPINGS_FILE").Return("/etc/mappings.yaml", true)
*/
package env
