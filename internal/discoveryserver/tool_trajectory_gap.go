package discoveryserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_discovery/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTrajectoryGap(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "trajectory_gap",
		Description: "Compare candidate CV text against a mined success pattern. Returns missing golden-step roles, an impact density gap ratio, and technical/soft skill gaps. Pass a pattern directly, or target_role + target_company to use the cached pattern. Never triggers a live profile search.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.TrajectoryGapInput) (*mcp.CallToolResult, *engine.GapReport, error) {
		if input.CVText == "" {
			return nil, nil, errors.New("cv_text is required")
		}

		pattern, err := resolvePattern(ctx, input)
		if err != nil {
			return nil, nil, err
		}

		report := engine.AnalyzeTrajectoryGap(input.CVText, pattern)
		return nil, &report, nil
	})
}

// resolvePattern takes an inline pattern when given, otherwise derives one
// from the cached profile set for the target pair.
func resolvePattern(ctx context.Context, input engine.TrajectoryGapInput) (engine.SuccessPattern, error) {
	if input.Pattern != nil {
		return *input.Pattern, nil
	}
	if input.TargetRole == "" || input.TargetCompany == "" {
		return engine.SuccessPattern{}, errors.New("either pattern or target_role + target_company is required")
	}
	profiles, ok := engine.CacheGetProfiles(ctx, input.TargetCompany, input.TargetRole)
	if !ok {
		return engine.SuccessPattern{}, errors.New("no cached profiles for this target; run career_patterns first")
	}
	return engine.DeriveSuccessPattern(profiles, input.TargetRole, input.TargetCompany), nil
}
