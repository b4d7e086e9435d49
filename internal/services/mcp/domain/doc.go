// Package domain translates MCP tool calls into split calculations.
//
// The package is intentionally explicit about that mapping:
// - decode MCP tool input into calculator arguments,
// - run the deterministic split calculator,
// - and surface structured outputs that MCP clients can render.
package domain
