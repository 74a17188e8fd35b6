package parser

import (
	"fmt"
	"regexp"
	"strings"

	"agentctx/internal/model"
)

var (
	missionPattern    = regexp.MustCompile(`(?m)^>\s*\*\*Project Mission:\*\*\s*(.+)$`)
	philosophyPattern = regexp.MustCompile(`(?m)^>\s*\*\*Core Philosophy:\*\*\s*(.+)$`)

	// Bulleted `- **Keyword...**: value` lines, keyword matched as a prefix so
	// "Language:" and "Languages:" both hit.
	stackBulletFormat = `(?im)^\s*-\s*\*\*%s[^*]*\*\*:?\s*(.+)$`
	// Same shape without requiring the bullet dash.
	pkgManagerPattern = regexp.MustCompile(`(?im)^\s*-?\s*\*\*package manager[^*]*\*\*:?\s*(.+)$`)
)

// ParseProjectDoc runs every extraction over an AGENTS.md-style document.
// Each extraction is independent; a document missing any one piece still
// yields the rest.
func ParseProjectDoc(path string, content string) model.ProjectDoc {
	doc := model.ProjectDoc{
		Exists:         true,
		Path:           path,
		Content:        content,
		Mission:        firstMatch(missionPattern, content),
		CorePhilosophy: firstMatch(philosophyPattern, content),
		Sections:       ParseSections(content),
	}
	doc.TechStack = ExtractTechStack(content, doc.Sections)
	doc.Boundaries = ExtractBoundaries(content, doc.Sections)
	return doc
}

func firstMatch(re *regexp.Regexp, content string) string {
	if m := re.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// sectionSpan returns the lines of the first section whose title contains any
// of the given fragments (case-insensitive). The span runs from the section's
// heading to the start of the next level-2 section, so nested H3 subsections
// stay in while sibling H2 sections stay out. A document whose content spills
// into a second sibling H2 loses that half; that cutoff is deliberate.
func sectionSpan(content string, sections []model.Section, fragments ...string) ([]string, bool) {
	idx := -1
	for i, s := range sections {
		title := strings.ToLower(s.Title)
		for _, frag := range fragments {
			if strings.Contains(title, frag) {
				idx = i
				break
			}
		}
		if idx >= 0 {
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	lines := strings.Split(content, "\n")
	start := sections[idx].StartLine
	end := len(lines)
	for _, s := range sections[idx+1:] {
		if s.Level == 2 && s.StartLine > start {
			end = s.StartLine
			break
		}
	}
	if start >= len(lines) {
		return nil, false
	}
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end], true
}

// ExtractTechStack pulls the technology summary from the first section whose
// title mentions "tech stack" or "technology". Nil when no such section exists.
func ExtractTechStack(content string, sections []model.Section) *model.TechStackInfo {
	span, ok := sectionSpan(content, sections, "tech stack", "technology")
	if !ok {
		return nil
	}
	text := strings.Join(span, "\n")

	info := &model.TechStackInfo{
		Languages:  stackValues(text, "language"),
		Frameworks: stackValues(text, "framework"),
		BuildTools: stackValues(text, "build"),
		Testing:    stackValues(text, "testing"),
	}
	if m := pkgManagerPattern.FindStringSubmatch(text); m != nil {
		info.PackageManager = strings.TrimSpace(m[1])
	}
	return info
}

// stackValues collects every bullet value for one keyword within the span.
func stackValues(text, keyword string) []string {
	re := regexp.MustCompile(fmt.Sprintf(stackBulletFormat, regexp.QuoteMeta(keyword)))
	var values []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if v := strings.TrimSpace(m[1]); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// ExtractBoundaries pulls the three boundary tiers from the section whose
// title mentions "operational boundaries". Nil when no such section exists;
// a present section always yields all three tiers, empty where unmatched.
func ExtractBoundaries(content string, sections []model.Section) *model.OperationalBoundaries {
	span, ok := sectionSpan(content, sections, "operational boundaries")
	if !ok {
		return nil
	}
	return &model.OperationalBoundaries{
		Tier1Always: ExtractTierItems(span, 1, "always"),
		Tier2Ask:    ExtractTierItems(span, 2, "ask"),
		Tier3Never:  ExtractTierItems(span, 3, "never"),
	}
}

// ExtractTierItems finds the sub-heading for one tier inside the boundaries
// span and collects its `- **TIERNAME** text` bullets, stopping at the next
// level-2-or-3 heading. Both a missing sub-heading and a sub-heading with no
// bullets yield an empty slice.
func ExtractTierItems(span []string, tier int, name string) []string {
	heading := regexp.MustCompile(fmt.Sprintf(`(?i)^###?\s+.*tier\s*%d.*%s`, tier, regexp.QuoteMeta(name)))
	bullet := regexp.MustCompile(fmt.Sprintf(`(?i)^\s*-\s*\*\*%s\*\*\s*(.+)$`, regexp.QuoteMeta(name)))

	start := -1
	for i, line := range span {
		if heading.MatchString(line) {
			start = i + 1
			break
		}
	}
	items := []string{}
	if start < 0 {
		return items
	}
	for _, line := range span[start:] {
		if strings.HasPrefix(line, "## ") || strings.HasPrefix(line, "### ") {
			break
		}
		if m := bullet.FindStringSubmatch(line); m != nil {
			items = append(items, strings.TrimSpace(m[1]))
		}
	}
	return items
}
