// Package mcp implements the Model Context Protocol server for mcpup.
//
// The mcp package provides:
// - MCP server implementation for external tool integration
// - Tools for extracting server configurations from documentation sources
// - Tools for installing extracted configurations into the store
package mcp
