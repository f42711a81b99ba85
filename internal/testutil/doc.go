// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that fail fast on
// setup errors instead of repeating the error checks in every test.
//
// Helpers cover environment variables (MustSetenv, MustUnsetenv, SetHomeDir)
// and on-disk fixtures (MustMkdirAll, MustWriteFile, WriteTree).
package testutil
