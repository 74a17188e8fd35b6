package scan

import (
	"testing"

	"agentctx/internal/model"
)

func TestCommands(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/proj/.cursor/commands/deploy.md":   "# Deploy\nShip it.",
		"/proj/.cursor/commands/README.md":   "not a command",
		"/home/u/.cursor/commands/global.md": "# Global\nEverywhere.",
	})

	commands := Commands(fs, "/proj", "/home/u")
	if len(commands) != 2 {
		t.Fatalf("len(commands) = %d, want 2: %+v", len(commands), commands)
	}

	byName := map[string]model.Command{}
	for _, c := range commands {
		byName[c.FileName] = c
	}

	deploy := byName["deploy.md"]
	if deploy.Location != model.LocationWorkspace {
		t.Errorf("deploy location = %v, want workspace", deploy.Location)
	}
	if deploy.Content != "# Deploy\nShip it." {
		t.Errorf("deploy content = %q", deploy.Content)
	}

	global := byName["global.md"]
	if global.Location != model.LocationGlobal {
		t.Errorf("global location = %v, want global", global.Location)
	}

	if _, found := byName["README.md"]; found {
		t.Error("README.md must be excluded")
	}
}

func TestCommands_OneRootMissing(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/proj/.cursor/commands/only.md": "workspace only",
	})

	commands := Commands(fs, "/proj", "/home/u")
	if len(commands) != 1 || commands[0].FileName != "only.md" {
		t.Fatalf("commands = %+v, want just only.md", commands)
	}
}

func TestCommands_UnreadableFileDegrades(t *testing.T) {
	base := memFS(t, map[string]string{
		"/proj/.cursor/commands/ok.md":     "fine",
		"/proj/.cursor/commands/broken.md": "never seen",
	})
	fs := failingFS{FS: base, failPaths: map[string]bool{
		"/proj/.cursor/commands/broken.md": true,
	}}

	commands := Commands(fs, "/proj", "/home/u")
	if len(commands) != 2 {
		t.Fatalf("len(commands) = %d, want 2", len(commands))
	}
	for _, c := range commands {
		if c.FileName == "broken.md" && c.Content != model.ErrReadingContent {
			t.Errorf("broken content = %q, want sentinel", c.Content)
		}
		if c.FileName == "ok.md" && c.Content != "fine" {
			t.Errorf("ok content = %q", c.Content)
		}
	}
}
