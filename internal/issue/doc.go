// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors for the command line: each error
// names the failed operation and the resource involved, and carries
// suggestions the CLI prints below the message.
package issue
