//nolint:revive // var-naming - package name is meaningful
package util

import (
	"os"
	"path/filepath"
)

// HomeDir returns the user's home directory
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

// RulesPath returns the rules directory for a project
func RulesPath(root string) string {
	return filepath.Join(root, ".cursor", "rules")
}

// CommandsPath returns the commands directory under a project or user root
func CommandsPath(root string) string {
	return filepath.Join(root, ".cursor", "commands")
}

// SkillsPath returns the skills directory under a project or user root
func SkillsPath(root string) string {
	return filepath.Join(root, ".cursor", "skills")
}

// ProjectDocPath returns the AGENTS.md path for a project
func ProjectDocPath(root string) string {
	return filepath.Join(root, "AGENTS.md")
}

// SpecsPath returns the specs root for a project
func SpecsPath(root string) string {
	return filepath.Join(root, "specs")
}

// SchemasPath returns the schemas root for a project
func SchemasPath(root string) string {
	return filepath.Join(root, "schemas")
}

// StripExt returns name without its extension
func StripExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
