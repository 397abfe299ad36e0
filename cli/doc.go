// Package cli implements the command-line interface for minigrep.
//
// The cli package provides:
// - Argument handling through a cobra root command
// - Loading and decoding of the target file
// - Selection of the case policy and printing of matching lines
// - User-facing rendering of failures
package cli
