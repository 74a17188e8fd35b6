package scan

import (
	"testing"
)

func TestArtifacts_FullProject(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/proj/AGENTS.md": "# Proj\n\n> **Project Mission:** Scan things.\n\n## Tech Stack\n\n- **Language:** Go\n",
		"/proj/specs/auth/spec.md":    "# Auth\n\n## Blueprint\n\nplan\n",
		"/proj/specs/billing/spec.md": "# Billing\n\n## Contract\n\nterms\n",
		"/proj/specs/empty/notes.md":  "no spec.md in this domain",
		"/proj/schemas/event.json":    `{"$id":"https://example.com/event.json"}`,
		"/proj/schemas/legacy.json":   `{"id":"legacy-schema"}`,
		"/proj/schemas/broken.json":   `{"bad":`,
	})

	bundle := Artifacts(fs, "/proj")

	if !bundle.HasAnyArtifact {
		t.Error("HasAnyArtifact = false, want true")
	}
	if !bundle.Doc.Exists {
		t.Fatal("Doc.Exists = false, want true")
	}
	if bundle.Doc.Mission != "Scan things." {
		t.Errorf("Mission = %q", bundle.Doc.Mission)
	}
	if bundle.Doc.TechStack == nil || len(bundle.Doc.TechStack.Languages) != 1 {
		t.Errorf("TechStack = %+v", bundle.Doc.TechStack)
	}

	if !bundle.Specs.Exists {
		t.Fatal("Specs.Exists = false, want true")
	}
	if len(bundle.Specs.Entries) != 2 {
		t.Fatalf("Specs.Entries = %+v, want 2", bundle.Specs.Entries)
	}
	for _, e := range bundle.Specs.Entries {
		switch e.Domain {
		case "auth":
			if !e.HasBlueprint || e.HasContract {
				t.Errorf("auth flags = blueprint %v contract %v", e.HasBlueprint, e.HasContract)
			}
		case "billing":
			if e.HasBlueprint || !e.HasContract {
				t.Errorf("billing flags = blueprint %v contract %v", e.HasBlueprint, e.HasContract)
			}
		default:
			t.Errorf("unexpected spec domain %q", e.Domain)
		}
	}

	if !bundle.Schemas.Exists {
		t.Fatal("Schemas.Exists = false, want true")
	}
	ids := map[string]string{}
	for _, e := range bundle.Schemas.Entries {
		ids[e.Name] = e.SchemaID
	}
	if ids["event"] != "https://example.com/event.json" {
		t.Errorf("event id = %q", ids["event"])
	}
	if ids["legacy"] != "legacy-schema" {
		t.Errorf("legacy id = %q", ids["legacy"])
	}
	if got, found := ids["broken"]; !found || got != "" {
		t.Errorf("broken = %q (found %v), want listed with empty id", got, found)
	}
}

func TestArtifacts_EmptyProject(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/proj/main.go": "package main",
	})

	bundle := Artifacts(fs, "/proj")

	if bundle.HasAnyArtifact {
		t.Error("HasAnyArtifact = true, want false")
	}
	if bundle.Doc.Exists {
		t.Error("Doc.Exists = true, want false")
	}
	if bundle.Specs.Exists || bundle.Specs.Entries == nil || len(bundle.Specs.Entries) != 0 {
		t.Errorf("Specs = %+v, want exists=false with empty entries", bundle.Specs)
	}
	if bundle.Schemas.Exists || bundle.Schemas.Entries == nil || len(bundle.Schemas.Entries) != 0 {
		t.Errorf("Schemas = %+v, want exists=false with empty entries", bundle.Schemas)
	}
}

func TestArtifacts_IndependentCategories(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/proj/schemas/only.json": `{"$id":"x"}`,
	})

	bundle := Artifacts(fs, "/proj")
	if bundle.Doc.Exists || bundle.Specs.Exists {
		t.Error("doc/specs must report non-existent independently")
	}
	if !bundle.Schemas.Exists || !bundle.HasAnyArtifact {
		t.Error("schemas alone must set HasAnyArtifact")
	}
}
