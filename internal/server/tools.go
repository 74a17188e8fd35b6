package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// commandSummary is the list_commands row: raw content is withheld and a
// synthesized description stands in for it.
type commandSummary struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
}

func registerTools(s *server.MCPServer, q *Query) {
	s.AddTool(
		mcp.NewTool("list_rules",
			mcp.WithDescription("List every rule discovered under the project's rules directory."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return jsonResult(q.Rules())
		},
	)

	s.AddTool(
		mcp.NewTool("get_rule",
			mcp.WithDescription("Get one rule by name (file name without extension, case-insensitive)."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Rule name")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			name, err := req.RequireString("name")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			rule, ok := q.RuleByName(name)
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("no rule named %q", name)), nil
			}
			return jsonResult(rule)
		},
	)

	s.AddTool(
		mcp.NewTool("list_commands",
			mcp.WithDescription("List workspace and global commands with synthesized descriptions."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			commands := q.Commands()
			summaries := make([]commandSummary, 0, len(commands))
			for _, c := range commands {
				summaries = append(summaries, commandSummary{
					Name:        c.FileName,
					Path:        c.Path,
					Location:    c.Location.String(),
					Description: DescribeCommand(c.Content),
				})
			}
			return jsonResult(summaries)
		},
	)

	s.AddTool(
		mcp.NewTool("get_command",
			mcp.WithDescription("Get one command's raw markdown by name (case-insensitive)."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Command name")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			name, err := req.RequireString("name")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			cmd, ok := q.CommandByName(name)
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("no command named %q", name)), nil
			}
			return jsonResult(cmd)
		},
	)

	s.AddTool(
		mcp.NewTool("list_skills",
			mcp.WithDescription("List workspace and global skills."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return jsonResult(q.Skills())
		},
	)

	s.AddTool(
		mcp.NewTool("get_skill",
			mcp.WithDescription("Get one skill by its directory name (case-insensitive)."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Skill name")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			name, err := req.RequireString("name")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			skill, ok := q.SkillByName(name)
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("no skill named %q", name)), nil
			}
			return jsonResult(skill)
		},
	)

	s.AddTool(
		mcp.NewTool("get_artifacts",
			mcp.WithDescription("Get the project artifact bundle: AGENTS.md summary, specs, schemas."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return jsonResult(q.Artifacts())
		},
	)

	s.AddTool(
		mcp.NewTool("list_specs",
			mcp.WithDescription("List spec domain entries under the project's specs directory."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return jsonResult(q.Specs())
		},
	)

	s.AddTool(
		mcp.NewTool("get_project_context",
			mcp.WithDescription("Get the full project context: rules, commands, skills, and artifacts."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return jsonResult(q.Context())
		},
	)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
