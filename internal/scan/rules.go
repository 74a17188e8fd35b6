// Package scan composes the filesystem abstraction, the walkers, and the
// parsers into full artifact listings. Each scanner is isolated: a missing
// root or a broken file in one never affects another, and every call performs
// a complete fresh traversal with no state carried between invocations.
package scan

import (
	"path/filepath"

	"agentctx/internal/fsys"
	"agentctx/internal/logging"
	"agentctx/internal/model"
	"agentctx/internal/parser"
	"agentctx/internal/util"
)

// RuleExtensions are the file extensions recognized as rule files.
var RuleExtensions = []string{".mdc", ".md"}

// Rules walks {projectRoot}/.cursor/rules recursively and parses every rule
// file found. A file that cannot be read or parsed degrades to its sentinel
// entry; the batch always returns one record per discovered path.
func Rules(fs fsys.FS, projectRoot string) []model.Rule {
	return RulesWithExtensions(fs, projectRoot, RuleExtensions)
}

// RulesWithExtensions is Rules with the recognized extensions overridden,
// for configurations that add or replace rule file types. Empty input falls
// back to the defaults.
func RulesWithExtensions(fs fsys.FS, projectRoot string, exts []string) []model.Rule {
	if len(exts) == 0 {
		exts = RuleExtensions
	}
	root := util.RulesPath(projectRoot)
	paths := fsys.WalkFiles(fs, root, exts)

	rules := make([]model.Rule, 0, len(paths))
	for _, path := range paths {
		rules = append(rules, readRule(fs, path))
	}

	logging.Debug("scanned rules",
		logging.Artifact("rule"),
		logging.Path(root),
		logging.Count(len(rules)),
	)
	return rules
}

func readRule(fs fsys.FS, path string) model.Rule {
	rule := model.Rule{Path: path, FileName: filepath.Base(path)}

	data, err := fs.ReadFile(path)
	if err != nil {
		logging.Warn("failed to read rule file",
			logging.Artifact("rule"),
			logging.Path(path),
			logging.Err(err),
		)
		rule.Content = model.ErrReadingContent
		rule.Metadata = model.RuleMetadata{Description: model.ErrParsingFile}
		return rule
	}

	rule.Content, rule.Metadata = parser.ParseRule(data)
	return rule
}
