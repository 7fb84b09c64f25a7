// Package discoveryserver exposes the discovery engine as MCP tools:
// career_patterns, trajectory_gap, pattern_peek.
package discoveryserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all discovery tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerCareerPatterns(server)
	registerTrajectoryGap(server)
	registerPatternPeek(server)
}
