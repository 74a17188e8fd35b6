package parser

import (
	"regexp"
	"strings"

	"agentctx/internal/model"
)

var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)

// ParseSections scans the text line by line for markdown headings and returns
// their spans in document order. The spans partition the full line range:
// each section ends on the line before the next heading of any level, and the
// last section runs to the final line of the document. Text with no headings
// yields no sections.
func ParseSections(content string) []model.Section {
	lines := strings.Split(content, "\n")
	var sections []model.Section

	for i, line := range lines {
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if n := len(sections); n > 0 {
			sections[n-1].EndLine = i - 1
		}
		sections = append(sections, model.Section{
			Level:     len(m[1]),
			Title:     strings.TrimSpace(m[2]),
			StartLine: i,
			EndLine:   len(lines) - 1,
		})
	}
	return sections
}

// HasSection reports whether a level-2 heading starting with name exists
// anywhere in the content. The match is case-insensitive and prefix-based,
// so "## Blueprint Details" satisfies a query for "Blueprint".
func HasSection(content, name string) bool {
	prefix := strings.ToLower(name)
	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(line, "## ") {
			continue
		}
		title := strings.ToLower(strings.TrimSpace(line[3:]))
		if strings.HasPrefix(title, prefix) {
			return true
		}
	}
	return false
}
