package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource locators take the shape agentctx://category/identifier, where the
// identifier is the record's name with its extension stripped, matched
// case-insensitively.
const uriScheme = "agentctx://"

func registerResources(s *server.MCPServer, q *Query) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(uriScheme+"rules/{name}", "Rule",
			mcp.WithTemplateDescription("A discovered rule file's body"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			name, err := uriIdentifier(req.Params.URI, "rules")
			if err != nil {
				return nil, err
			}
			rule, ok := q.RuleByName(name)
			if !ok {
				return nil, fmt.Errorf("no rule named %q", name)
			}
			return markdownContents(req.Params.URI, rule.Content), nil
		},
	)

	s.AddResourceTemplate(
		mcp.NewResourceTemplate(uriScheme+"commands/{name}", "Command",
			mcp.WithTemplateDescription("A discovered command file's raw markdown"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			name, err := uriIdentifier(req.Params.URI, "commands")
			if err != nil {
				return nil, err
			}
			cmd, ok := q.CommandByName(name)
			if !ok {
				return nil, fmt.Errorf("no command named %q", name)
			}
			return markdownContents(req.Params.URI, cmd.Content), nil
		},
	)

	s.AddResourceTemplate(
		mcp.NewResourceTemplate(uriScheme+"skills/{name}", "Skill",
			mcp.WithTemplateDescription("A discovered skill's SKILL.md body"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			name, err := uriIdentifier(req.Params.URI, "skills")
			if err != nil {
				return nil, err
			}
			skill, ok := q.SkillByName(name)
			if !ok {
				return nil, fmt.Errorf("no skill named %q", name)
			}
			return markdownContents(req.Params.URI, skill.Content), nil
		},
	)
}

// uriIdentifier pulls the identifier out of agentctx://category/identifier.
func uriIdentifier(uri, category string) (string, error) {
	prefix := uriScheme + category + "/"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("unexpected resource uri %q", uri)
	}
	name := strings.TrimPrefix(uri, prefix)
	if name == "" {
		return "", fmt.Errorf("resource uri %q has no identifier", uri)
	}
	return name, nil
}

func markdownContents(uri, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     text,
		},
	}
}
