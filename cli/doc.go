// Package cli implements the command-line interface for mcpup.
//
// The cli package provides:
// - Command-line argument parsing and validation
// - The install flow: resolve, extract, merge, persist
// - Terminal rendering of extracted configurations
// - Browser integration for resolved sources
package cli
