package e2e

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRulesListAcrossFullProject(t *testing.T) {
	h := NewHarness(t)
	p := h.Project()
	p.WriteRule("style.mdc", "Code style rules", "Use tabs.")
	p.WriteRule("naming.md", "Naming conventions", "Short names.")
	p.WriteFile(".cursor/rules/notes.txt", "not a rule")

	r := h.Run("--no-color", "rules")
	AssertSuccess(t, r)
	AssertOutputContains(t, r, "style.mdc")
	AssertOutputContains(t, r, "naming.md")
	AssertOutputContains(t, r, "Code style rules")
	AssertOutputNotContains(t, r, "notes.txt")
}

func TestCommandsListMergesBothRoots(t *testing.T) {
	h := NewHarness(t)
	h.Project().WriteCommand("deploy.md", "# Deploy\n\nShip the service.")
	h.Project().WriteCommand("README.md", "# Not a command")
	h.User().WriteCommand("review.md", "# Review\n\nReview a change.")

	r := h.Run("--no-color", "commands")
	AssertSuccess(t, r)
	AssertOutputContains(t, r, "deploy.md")
	AssertOutputContains(t, r, "workspace")
	AssertOutputContains(t, r, "review.md")
	AssertOutputContains(t, r, "global")
	AssertOutputNotContains(t, r, "README.md")
}

func TestSkillsListShowsTitles(t *testing.T) {
	h := NewHarness(t)
	h.Project().WriteSkill("code-review", "Code Review", "Systematic review process")

	r := h.Run("--no-color", "skills")
	AssertSuccess(t, r)
	AssertOutputContains(t, r, "code-review")
	AssertOutputContains(t, r, "Code Review")
}

func TestArtifactsAcrossFullProject(t *testing.T) {
	h := NewHarness(t)
	p := h.Project()
	p.WriteProjectDoc("# Acme\n\n> **Project Mission:** Ship useful tools\n\n## Tech Stack\n\n- **Language**: Go\n")
	p.WriteSpec("auth", "# Auth\n\n## Blueprint\n\nDetails.\n\n## Contract\n\nAPI.\n")
	p.WriteSchema("event.json", `{"$id": "https://acme.dev/event.schema.json"}`)

	r := h.Run("--no-color", "artifacts")
	AssertSuccess(t, r)
	AssertOutputContains(t, r, "mission: Ship useful tools")
	AssertOutputContains(t, r, "auth [blueprint] [contract]")
	AssertOutputContains(t, r, "event (https://acme.dev/event.schema.json)")
}

func TestContextEmitsWellFormedJSON(t *testing.T) {
	h := NewHarness(t)
	h.Project().WriteRule("style.mdc", "Style", "Body.")
	h.Project().WriteSkill("review", "Review", "Overview")

	r := h.Run("--no-color", "context")
	AssertSuccess(t, r)

	var ctx struct {
		Rules  []json.RawMessage `json:"rules"`
		Skills []json.RawMessage `json:"skills"`
		Artifacts struct {
			HasAnyArtifact bool `json:"hasAnyArtifact"`
		} `json:"artifacts"`
	}
	if err := json.Unmarshal([]byte(r.Stdout), &ctx); err != nil {
		t.Fatalf("context output is not valid JSON: %v\n%s", err, r.Stdout)
	}
	if len(ctx.Rules) != 1 || len(ctx.Skills) != 1 {
		t.Errorf("context = %d rules, %d skills; want 1 and 1", len(ctx.Rules), len(ctx.Skills))
	}
	if ctx.Artifacts.HasAnyArtifact {
		t.Error("hasAnyArtifact = true with no project docs, specs, or schemas")
	}
}

func TestBrokenRuleDegradesListing(t *testing.T) {
	h := NewHarness(t)
	p := h.Project()
	p.WriteRule("good.mdc", "Works fine", "Body.")
	p.WriteFile(".cursor/rules/broken.mdc", "---\ndescription: [unclosed\n---\nbody")

	r := h.Run("--no-color", "rules")
	AssertSuccess(t, r)
	AssertOutputContains(t, r, "good.mdc")
	AssertOutputContains(t, r, "broken.mdc")
	AssertOutputContains(t, r, "Error parsing file")
}

func TestConfiguredRuleExtensions(t *testing.T) {
	h := NewHarness(t)
	h.WriteConfig("scan:\n  rule_extensions:\n    - .mdc\n    - .rule\n")
	p := h.Project()
	p.WriteRule("style.mdc", "Style", "Body.")
	p.WriteFile(".cursor/rules/legacy.rule", "---\ndescription: Legacy convention\n---\nBody.")

	r := h.Run("--no-color", "rules")
	AssertSuccess(t, r)
	AssertOutputContains(t, r, "style.mdc")
	AssertOutputContains(t, r, "legacy.rule")
	AssertOutputContains(t, r, "Legacy convention")

	// Without the config the extra extension is not recognized.
	h2 := NewHarness(t)
	h2.Project().WriteFile(".cursor/rules/legacy.rule", "---\ndescription: Legacy convention\n---\nBody.")
	r2 := h2.Run("--no-color", "rules")
	AssertSuccess(t, r2)
	AssertOutputNotContains(t, r2, "legacy.rule")
}

func TestRulesJSONOutput(t *testing.T) {
	h := NewHarness(t)
	h.Project().WriteRule("style.mdc", "Style", "Body.")

	r := h.Run("--no-color", "rules", "--json")
	AssertSuccess(t, r)
	if !strings.HasPrefix(strings.TrimSpace(r.Stdout), "[") {
		t.Errorf("rules --json should emit a JSON array, got: %s", r.Stdout)
	}
	AssertOutputContains(t, r, `"fileName": "style.mdc"`)
}
