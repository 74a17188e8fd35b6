package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
)

func TestVersionVariables(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if Commit == "" {
		t.Error("Commit should not be empty")
	}
	if BuildDate == "" {
		t.Error("BuildDate should not be empty")
	}
}

// captureStdout runs fn while redirecting os.Stdout and returns what it wrote.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	runErr := fn()
	_ = w.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	if runErr != nil {
		t.Fatalf("command failed: %v", runErr)
	}
	return buf.String()
}

func TestVersionCommand(t *testing.T) {
	out := captureStdout(t, func() error {
		return Run(context.Background(), []string{"agentctx", "version"})
	})
	if !strings.Contains(out, "agentctx version") {
		t.Errorf("version output = %q, want it to mention agentctx version", out)
	}
}

func TestRulesCommandEmptyProject(t *testing.T) {
	dir := t.TempDir()
	out := captureStdout(t, func() error {
		return Run(context.Background(), []string{
			"agentctx", "--no-color", "--project", dir, "--user", dir, "rules",
		})
	})
	if !strings.Contains(out, "No rules found.") {
		t.Errorf("rules output = %q, want a no-rules message", out)
	}
}

func TestContextCommandEmitsJSON(t *testing.T) {
	dir := t.TempDir()
	out := captureStdout(t, func() error {
		return Run(context.Background(), []string{
			"agentctx", "--no-color", "--project", dir, "--user", dir, "context",
		})
	})
	for _, key := range []string{`"rules"`, `"commands"`, `"skills"`, `"artifacts"`} {
		if !strings.Contains(out, key) {
			t.Errorf("context output missing %s key", key)
		}
	}
}

func TestArtifactsCommandMissingEverything(t *testing.T) {
	dir := t.TempDir()
	out := captureStdout(t, func() error {
		return Run(context.Background(), []string{
			"agentctx", "--no-color", "--project", dir, "--user", dir, "artifacts",
		})
	})
	for _, want := range []string{"project doc: not found", "specs: not found", "schemas: not found"} {
		if !strings.Contains(out, want) {
			t.Errorf("artifacts output = %q, missing %q", out, want)
		}
	}
}
