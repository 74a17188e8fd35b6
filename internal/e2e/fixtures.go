package e2e

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Fixture provides helpers for building artifact trees in E2E tests.
type Fixture struct {
	t       *testing.T
	baseDir string
}

// NewFixture creates a new fixture helper rooted at the given directory.
func NewFixture(t *testing.T, baseDir string) *Fixture {
	t.Helper()
	return &Fixture{
		t:       t,
		baseDir: baseDir,
	}
}

// WriteFile writes content to a file relative to the fixture base directory.
// It creates parent directories as needed.
func (f *Fixture) WriteFile(relPath, content string) string {
	f.t.Helper()
	fullPath := filepath.Join(f.baseDir, relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		f.t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0o600); err != nil {
		f.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}

	return fullPath
}

// WriteRule writes a rule file with YAML frontmatter under .cursor/rules.
func (f *Fixture) WriteRule(name, description, body string) string {
	f.t.Helper()

	content := "---\n"
	if description != "" {
		content += "description: " + description + "\n"
	}
	content += "---\n" + body
	return f.WriteFile(filepath.Join(".cursor", "rules", name), content)
}

// WriteCommand writes a command file under .cursor/commands.
func (f *Fixture) WriteCommand(name, body string) string {
	f.t.Helper()
	return f.WriteFile(filepath.Join(".cursor", "commands", name), body)
}

// WriteSkill writes a SKILL.md under a named skill subdirectory.
func (f *Fixture) WriteSkill(dirName, title, overview string) string {
	f.t.Helper()

	content := fmt.Sprintf("---\ntitle: %s\noverview: %s\n---\n\n# %s\n", title, overview, title)
	return f.WriteFile(filepath.Join(".cursor", "skills", dirName, "SKILL.md"), content)
}

// WriteProjectDoc writes an AGENTS.md at the fixture root.
func (f *Fixture) WriteProjectDoc(content string) string {
	f.t.Helper()
	return f.WriteFile("AGENTS.md", content)
}

// WriteSpec writes a spec.md under a named domain subdirectory of specs/.
func (f *Fixture) WriteSpec(domain, content string) string {
	f.t.Helper()
	return f.WriteFile(filepath.Join("specs", domain, "spec.md"), content)
}

// WriteSchema writes a JSON schema file under schemas/.
func (f *Fixture) WriteSchema(name, content string) string {
	f.t.Helper()
	return f.WriteFile(filepath.Join("schemas", name), content)
}

// MkdirAll creates a directory and all parent directories relative to the base.
func (f *Fixture) MkdirAll(relPath string) string {
	f.t.Helper()
	fullPath := filepath.Join(f.baseDir, relPath)

	if err := os.MkdirAll(fullPath, 0o750); err != nil {
		f.t.Fatalf("failed to create directory %s: %v", fullPath, err)
	}

	return fullPath
}

// Path returns the full path for a relative path.
func (f *Fixture) Path(relPath string) string {
	return filepath.Join(f.baseDir, relPath)
}

// Exists returns true if the file or directory exists.
func (f *Fixture) Exists(relPath string) bool {
	f.t.Helper()
	_, err := os.Stat(filepath.Join(f.baseDir, relPath))
	return err == nil
}
