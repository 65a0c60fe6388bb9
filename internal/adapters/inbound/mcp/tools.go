package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/authentiq/authentiq/internal/adapters/outbound/config"
	"github.com/authentiq/authentiq/internal/application"
	"github.com/authentiq/authentiq/internal/domain"
)

// registerTools registers all authentiq MCP tools on the given server.
func registerTools(s *server.MCPServer, configPath string) {
	// 1. authentiq_score
	scoreOpts := append([]mcplib.ToolOption{
		mcplib.WithDescription("Score a social profile snapshot and return its authenticity label and confidence as JSON"),
	}, profileArgs()...)
	s.AddTool(
		mcplib.NewTool("authentiq_score", scoreOpts...),
		handleScore(configPath, false),
	)

	// 2. authentiq_score_detailed
	detailedOpts := append([]mcplib.ToolOption{
		mcplib.WithDescription("Score a social profile snapshot and return the full breakdown: derived signals, per-model scores, penalty, label, and confidence"),
	}, profileArgs()...)
	s.AddTool(
		mcplib.NewTool("authentiq_score_detailed", detailedOpts...),
		handleScore(configPath, true),
	)

	// 3. authentiq_config
	s.AddTool(
		mcplib.NewTool("authentiq_config",
			mcplib.WithDescription("Returns the effective scoring configuration as JSON"),
		),
		handleConfig(configPath),
	)
}

func profileArgs() []mcplib.ToolOption {
	return []mcplib.ToolOption{
		mcplib.WithNumber("followers", mcplib.Description("Follower count")),
		mcplib.WithNumber("following", mcplib.Description("Accounts followed")),
		mcplib.WithNumber("statuses", mcplib.Description("Lifetime post count")),
		mcplib.WithNumber("favorites", mcplib.Description("Lifetime likes given")),
		mcplib.WithNumber("listed", mcplib.Description("Times listed by others")),
		mcplib.WithNumber("media", mcplib.Description("Lifetime media posts")),
		mcplib.WithBoolean("verified", mcplib.Description("Platform-verified account")),
		mcplib.WithBoolean("default_profile", mcplib.Description("Profile theme never customized")),
		mcplib.WithBoolean("default_image", mcplib.Description("Default avatar still in place")),
		mcplib.WithBoolean("possibly_sensitive", mcplib.Description("Account flagged for sensitive content")),
		mcplib.WithString("created_at", mcplib.Description("Account creation time, RFC 3339")),
		mcplib.WithString("observed_at", mcplib.Description("Snapshot time, RFC 3339 (defaults to now)")),
	}
}

func handleScore(configPath string, detailed bool) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		profile, err := profileFromRequest(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewScoreService(config.New())
		result, err := svc.ScoreProfile(profile, configPath)
		if err != nil {
			return errorResult(fmt.Sprintf("scoring failed: %v", err)), nil
		}

		if detailed {
			return jsonResult(result)
		}
		return jsonResult(result.Result)
	}
}

func handleConfig(configPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		loader := config.New()
		cfg, err := loader.Load(configPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config failed: %v", err)), nil
		}
		return jsonResult(cfg)
	}
}

func profileFromRequest(request mcplib.CallToolRequest) (domain.ProfileData, error) {
	p := domain.ProfileData{
		Followers:         int64(request.GetFloat("followers", 0)),
		Following:         int64(request.GetFloat("following", 0)),
		Statuses:          int64(request.GetFloat("statuses", 0)),
		Favorites:         int64(request.GetFloat("favorites", 0)),
		Listed:            int64(request.GetFloat("listed", 0)),
		Media:             int64(request.GetFloat("media", 0)),
		Verified:          request.GetBool("verified", false),
		DefaultProfile:    request.GetBool("default_profile", false),
		DefaultImage:      request.GetBool("default_image", false),
		PossiblySensitive: request.GetBool("possibly_sensitive", false),
	}

	if raw := request.GetString("created_at", ""); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domain.ProfileData{}, fmt.Errorf("parsing created_at: %w", err)
		}
		p.CreatedAt = t
	}

	if raw := request.GetString("observed_at", ""); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domain.ProfileData{}, fmt.Errorf("parsing observed_at: %w", err)
		}
		p.ObservedAt = t
	} else {
		p.ObservedAt = time.Now().UTC()
	}

	return p, nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
