package discoveryserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_discovery/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerPatternPeek(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "pattern_peek",
		Description: "Check whether a (company, role) pair has a cached profile set, and if so return the profile count and derived pattern. Never triggers a live search.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.PatternPeekInput) (*mcp.CallToolResult, engine.PatternPeekOutput, error) {
		if input.TargetRole == "" || input.TargetCompany == "" {
			return nil, engine.PatternPeekOutput{}, errors.New("target_role and target_company are required")
		}

		profiles, ok := engine.CacheGetProfiles(ctx, input.TargetCompany, input.TargetRole)
		if !ok {
			return nil, engine.PatternPeekOutput{}, nil
		}

		pattern := engine.DeriveSuccessPattern(profiles, input.TargetRole, input.TargetCompany)
		return nil, engine.PatternPeekOutput{
			Cached:       true,
			ProfileCount: len(profiles),
			Pattern:      &pattern,
		}, nil
	})
}
