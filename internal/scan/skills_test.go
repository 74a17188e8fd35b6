package scan

import (
	"testing"

	"agentctx/internal/model"
)

func TestSkills(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/proj/.cursor/skills/review/SKILL.md": "---\ntitle: Review\noverview: Look at diffs\n---\nHow to review.",
		"/proj/.cursor/skills/bare/SKILL.md":   "# Bare Skill\nNo frontmatter.",
		"/home/u/.cursor/skills/tidy/SKILL.md": "---\ntitle: Tidy\n---\nKeep it clean.",
	})

	skills := Skills(fs, "/proj", "/home/u")
	if len(skills) != 3 {
		t.Fatalf("len(skills) = %d, want 3: %+v", len(skills), skills)
	}

	byName := map[string]model.Skill{}
	for _, s := range skills {
		byName[s.FileName] = s
	}

	review := byName["review"]
	if review.Metadata == nil || review.Metadata.Title != "Review" {
		t.Errorf("review metadata = %+v", review.Metadata)
	}
	if review.Location != model.LocationWorkspace {
		t.Errorf("review location = %v", review.Location)
	}

	bare := byName["bare"]
	if bare.Metadata == nil || bare.Metadata.Title != "Bare Skill" {
		t.Errorf("bare metadata = %+v, want heading-derived title", bare.Metadata)
	}

	tidy := byName["tidy"]
	if tidy.Location != model.LocationGlobal {
		t.Errorf("tidy location = %v, want global", tidy.Location)
	}
}

func TestSkills_DirectoryWithoutSkillFile(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/proj/.cursor/skills/empty/notes.txt": "no SKILL.md here",
	})

	skills := Skills(fs, "/proj", "/home/u")
	if len(skills) != 1 {
		t.Fatalf("len(skills) = %d, want 1", len(skills))
	}

	s := skills[0]
	if s.FileName != "empty" {
		t.Errorf("FileName = %q, want subdirectory name", s.FileName)
	}
	if s.Content != model.ErrReadingContent {
		t.Errorf("Content = %q, want sentinel", s.Content)
	}
	if s.Metadata != nil {
		t.Errorf("Metadata = %+v, want nil", s.Metadata)
	}
}

func TestSkills_MissingRoots(t *testing.T) {
	fs := memFS(t, nil)
	if skills := Skills(fs, "/proj", "/home/u"); len(skills) != 0 {
		t.Errorf("skills = %v, want empty", skills)
	}
}
