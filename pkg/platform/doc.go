// SPDX-License-Identifier: MPL-2.0

// Package platform holds the operating system constants and file-name rules
// shared by the resolver, the CLI configuration, and tests.
package platform
