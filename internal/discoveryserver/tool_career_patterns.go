package discoveryserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_discovery/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerCareerPatterns(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "career_patterns",
		Description: "Mine success patterns for a target role at a target company: fetch profiles of people who held the role, detect the role each held immediately before it, and return common previous roles, top skills, average tenure in the previous step, and impact keyword density. Results are cached per (company, role).",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.CareerPatternsInput) (*mcp.CallToolResult, engine.CareerPatternsOutput, error) {
		if input.TargetRole == "" {
			return nil, engine.CareerPatternsOutput{}, errors.New("target_role is required")
		}
		if input.TargetCompany == "" {
			return nil, engine.CareerPatternsOutput{}, errors.New("target_company is required")
		}

		profiles, pattern, err := engine.FetchCareerPatterns(ctx, input.TargetRole, input.TargetCompany, input.UseMock)
		if err != nil {
			return nil, engine.CareerPatternsOutput{}, err
		}
		return nil, engine.CareerPatternsOutput{
			TargetRole:    input.TargetRole,
			TargetCompany: input.TargetCompany,
			Profiles:      profiles,
			Pattern:       pattern,
		}, nil
	})
}
