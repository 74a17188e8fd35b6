package server

import (
	"strings"

	"agentctx/internal/fsys"
	"agentctx/internal/model"
	"agentctx/internal/scan"
)

// Query is the read surface both protocol projections (tools and resources)
// share. Every method performs a full fresh scan; incremental behavior is the
// caller's problem.
type Query struct {
	fs          fsys.FS
	projectRoot string
	userRoot    string
	ruleExts    []string
}

// NewQuery builds a query surface over the given filesystem and roots.
func NewQuery(fs fsys.FS, projectRoot, userRoot string) *Query {
	return &Query{
		fs:          fs,
		projectRoot: projectRoot,
		userRoot:    userRoot,
		ruleExts:    scan.RuleExtensions,
	}
}

// WithRuleExtensions overrides the recognized rule file extensions, for
// configurations that add or replace rule file types. Empty input keeps
// the defaults. Returns the query for chaining.
func (q *Query) WithRuleExtensions(exts []string) *Query {
	if len(exts) > 0 {
		q.ruleExts = exts
	}
	return q
}

// Rules lists every discovered rule.
func (q *Query) Rules() []model.Rule {
	return scan.RulesWithExtensions(q.fs, q.projectRoot, q.ruleExts)
}

// RuleByName resolves a rule by case-insensitive name, extension stripped.
func (q *Query) RuleByName(name string) (model.Rule, bool) {
	for _, r := range q.Rules() {
		if matchesName(r.FileName, name, q.ruleExts) {
			return r, true
		}
	}
	return model.Rule{}, false
}

// Commands lists every discovered command.
func (q *Query) Commands() []model.Command {
	return scan.Commands(q.fs, q.projectRoot, q.userRoot)
}

// CommandByName resolves a command by case-insensitive name, extension stripped.
func (q *Query) CommandByName(name string) (model.Command, bool) {
	for _, c := range q.Commands() {
		if matchesName(c.FileName, name, scan.CommandExtensions) {
			return c, true
		}
	}
	return model.Command{}, false
}

// Skills lists every discovered skill.
func (q *Query) Skills() []model.Skill {
	return scan.Skills(q.fs, q.projectRoot, q.userRoot)
}

// SkillByName resolves a skill by case-insensitive name. Skill file names are
// their subdirectory names and carry no extension.
func (q *Query) SkillByName(name string) (model.Skill, bool) {
	for _, s := range q.Skills() {
		if strings.EqualFold(s.FileName, name) {
			return s, true
		}
	}
	return model.Skill{}, false
}

// Artifacts returns the project artifact bundle.
func (q *Query) Artifacts() model.ArtifactBundle {
	return scan.Artifacts(q.fs, q.projectRoot)
}

// Specs returns just the spec entries of the artifact bundle.
func (q *Query) Specs() model.SpecList {
	return q.Artifacts().Specs
}

// ProjectContext aggregates everything the scanners produce into one
// response, the projection behind the get_project_context operation.
type ProjectContext struct {
	Rules     []model.Rule         `json:"rules"`
	Commands  []model.Command      `json:"commands"`
	Skills    []model.Skill        `json:"skills"`
	Artifacts model.ArtifactBundle `json:"artifacts"`
}

// Context runs all four scans and bundles the results.
func (q *Query) Context() ProjectContext {
	return ProjectContext{
		Rules:     q.Rules(),
		Commands:  q.Commands(),
		Skills:    q.Skills(),
		Artifacts: q.Artifacts(),
	}
}

// matchesName compares a record's file name against a queried name,
// case-insensitively and with any recognized extension stripped from the
// file name.
func matchesName(fileName, queried string, exts []string) bool {
	stripped := fileName
	lower := strings.ToLower(fileName)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			stripped = fileName[:len(fileName)-len(ext)]
			break
		}
	}
	return strings.EqualFold(stripped, queried)
}
