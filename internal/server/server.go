// Package server exposes the scan orchestrators as a Model Context Protocol
// server: named query tools plus readable resources addressed by
// agentctx://category/identifier locators. Both surfaces are pure read
// projections over the same scans.
package server

import (
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with all tools and resources registered over
// the given query surface. The standalone host hands in a query over the
// native filesystem; tests hand in a virtual one.
func New(name string, q *Query) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
	)

	registerTools(s, q)
	registerResources(s, q)
	return s
}

// ServeStdio runs the server over stdin/stdout until EOF.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
