// Package api implements the core of mcpup: extracting MCP server
// configuration blocks from loosely structured documents and merging them
// into a persisted registry.
//
// The extraction engine is a chain of strategies evaluated in priority
// order, from a strict whole-document parse down to heuristic pattern
// scanning over partial or malformed JSON snippets. The first strategy to
// produce a non-empty registry wins.
package api
