package parser

import (
	"regexp"
	"strings"

	"agentctx/internal/model"
)

var h1Pattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// ParseSkill extracts skill metadata from raw SKILL.md text. With a populated
// frontmatter block the structured fields are used directly; with an empty or
// unparseable block the first level-1 heading becomes the title. When neither
// exists the metadata is nil, which consumers treat differently from an empty
// metadata object.
func ParseSkill(content []byte) (string, *model.SkillMetadata) {
	fm, err := SplitFrontmatter(content)
	if err != nil {
		body := strings.TrimSpace(string(content))
		return body, headingFallback(body)
	}
	if len(fm.Fields) == 0 {
		return fm.Body, headingFallback(fm.Body)
	}

	meta := &model.SkillMetadata{
		Title:         stringField(fm.Fields, "title"),
		Overview:      stringField(fm.Fields, "overview"),
		Prerequisites: sequenceField(fm.Fields, "prerequisites"),
		Steps:         sequenceField(fm.Fields, "steps"),
		Tools:         sequenceField(fm.Fields, "tools"),
		Guidance:      guidanceField(fm.Fields),
	}
	return fm.Body, meta
}

// headingFallback derives minimal metadata from the first level-1 heading,
// or nil when the document has none.
func headingFallback(body string) *model.SkillMetadata {
	m := h1Pattern.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	return &model.SkillMetadata{Title: strings.TrimSpace(m[1])}
}

// guidanceField reads the nested guidance mapping, nil when absent or not a
// mapping.
func guidanceField(fields map[string]any) *model.SkillGuidance {
	raw, ok := fields["guidance"].(map[string]any)
	if !ok {
		return nil
	}
	return &model.SkillGuidance{
		Role:        stringField(raw, "role"),
		Instruction: stringField(raw, "instruction"),
		Context:     stringField(raw, "context"),
		Examples:    sequenceField(raw, "examples"),
		Constraints: sequenceField(raw, "constraints"),
		Output:      stringField(raw, "output"),
	}
}
