package parser

import "testing"

func TestParseSkill(t *testing.T) {
	tests := map[string]struct {
		input        string
		wantNil      bool
		wantTitle    string
		wantSteps    []string
		wantGuidance bool
	}{
		"structured frontmatter": {
			input: `---
title: Code Review
overview: Review changed files
steps:
  - Read the diff
  - Leave comments
tools:
  - grep
guidance:
  role: reviewer
  instruction: be thorough
---
# Code Review

Details.`,
			wantTitle:    "Code Review",
			wantSteps:    []string{"Read the diff", "Leave comments"},
			wantGuidance: true,
		},
		"empty frontmatter falls back to h1": {
			input:     "---\n---\n# Deploy Helper\n\nSteps follow.",
			wantTitle: "Deploy Helper",
		},
		"no frontmatter h1 anywhere in document": {
			input:     "intro text\n\n# Late Title\nbody",
			wantTitle: "Late Title",
		},
		"no frontmatter and no h1 yields nil metadata": {
			input:   "## only level two\nprose",
			wantNil: true,
		},
		"malformed frontmatter falls back to h1": {
			input:     "---\ntitle: [broken\nbad: a: b\n---\n# Rescue Title\nbody",
			wantTitle: "Rescue Title",
		},
		"scalar steps coerce to absent": {
			input:     "---\ntitle: T\nsteps: not-a-list\n---\nbody",
			wantTitle: "T",
			wantSteps: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, meta := ParseSkill([]byte(tt.input))
			if tt.wantNil {
				if meta != nil {
					t.Fatalf("metadata = %+v, want nil", meta)
				}
				return
			}
			if meta == nil {
				t.Fatal("metadata = nil, want metadata")
			}
			if meta.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", meta.Title, tt.wantTitle)
			}
			if len(meta.Steps) != len(tt.wantSteps) {
				t.Fatalf("Steps = %v, want %v", meta.Steps, tt.wantSteps)
			}
			for i := range meta.Steps {
				if meta.Steps[i] != tt.wantSteps[i] {
					t.Errorf("Steps[%d] = %q, want %q", i, meta.Steps[i], tt.wantSteps[i])
				}
			}
			if tt.wantGuidance {
				if meta.Guidance == nil {
					t.Fatal("Guidance = nil, want guidance")
				}
				if meta.Guidance.Role != "reviewer" {
					t.Errorf("Guidance.Role = %q, want %q", meta.Guidance.Role, "reviewer")
				}
			}
		})
	}
}
