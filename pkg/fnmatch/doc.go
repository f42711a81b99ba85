// SPDX-License-Identifier: MPL-2.0

// Package fnmatch compiles editorconfig section globs into path matchers.
//
// The dialect is the one used in .editorconfig section headers:
//
//	*          any run of characters except '/'
//	**         any run of characters, '/' included
//	?          one character except '/'
//	[abc]      one character of the class ([!abc] negates it)
//	{a,b,c}    one of the alternatives, alternatives may nest
//	{N..M}     an integer between N and M inclusive
//	\x         the literal character x
//
// A glob without '/' matches a file name at any directory depth. A glob with
// '/' is anchored at the directory holding the configuration file, and a
// leading '/' is optional in that case.
//
// Globs are translated to a regular expression once by Compile; the resulting
// Matcher is immutable and safe for concurrent use.
package fnmatch
