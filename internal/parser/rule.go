package parser

import (
	"fmt"
	"strings"

	"agentctx/internal/model"
)

// ParseRule extracts rule metadata and body from raw file text. Missing
// frontmatter fields get their defaults (NoDescription, empty globs, false).
// When the frontmatter block itself fails to parse the whole rule degrades to
// the sentinel pair rather than returning an error; a batch scan renders it
// as a failed row and keeps going.
func ParseRule(content []byte) (string, model.RuleMetadata) {
	fm, err := SplitFrontmatter(content)
	if err != nil {
		return model.ErrReadingContent, model.RuleMetadata{Description: model.ErrParsingFile}
	}

	meta := model.RuleMetadata{
		Description: stringField(fm.Fields, "description"),
		Globs:       sequenceField(fm.Fields, "globs"),
		AlwaysApply: boolField(fm.Fields, "alwaysApply"),
	}
	if meta.Description == "" {
		meta.Description = model.NoDescription
	}
	if meta.Globs == nil {
		meta.Globs = []string{}
	}
	return fm.Body, meta
}

// BuildRuleContent renders a rule file from its metadata and body. The output
// parses back to the same triple and body, which is what the editor host's
// create-rule path relies on.
func BuildRuleContent(meta model.RuleMetadata, body string) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "description: %q\n", meta.Description)
	if len(meta.Globs) > 0 {
		sb.WriteString("globs:\n")
		for _, g := range meta.Globs {
			fmt.Fprintf(&sb, "  - %q\n", g)
		}
	}
	fmt.Fprintf(&sb, "alwaysApply: %t\n", meta.AlwaysApply)
	sb.WriteString("---\n\n")
	sb.WriteString(strings.TrimSpace(body))
	sb.WriteString("\n")
	return sb.String()
}
