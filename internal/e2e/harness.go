// Package e2e provides testing infrastructure for end-to-end CLI tests.
// It includes a harness for running CLI commands against fixture project
// trees and utilities for setting up isolated test environments.
package e2e

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"agentctx/internal/cli"
)

// Result contains the outcome of running a CLI command.
type Result struct {
	// Stdout contains the captured standard output.
	Stdout string
	// Err is the error returned by the CLI command, if any.
	Err error
	// ExitCode is the inferred exit code (0 for success, 1 for error).
	ExitCode int
}

// Success returns true if the command completed without error.
func (r *Result) Success() bool {
	return r.Err == nil
}

// Harness provides a test harness for running E2E CLI tests.
// It manages environment isolation, temp directories, and output capture.
type Harness struct {
	t           *testing.T
	projectRoot string
	userRoot    string
	configDir   string
}

// NewHarness creates a new E2E test harness with isolated project and user
// roots, and points the scan environment at them so no real directories
// leak into a test.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	h := &Harness{
		t:           t,
		projectRoot: t.TempDir(),
		userRoot:    t.TempDir(),
		configDir:   t.TempDir(),
	}

	t.Setenv("AGENTCTX_SCAN_PROJECT_ROOT", h.projectRoot)
	t.Setenv("AGENTCTX_SCAN_USER_ROOT", h.userRoot)
	// Keep any real config file out of the test.
	t.Setenv("XDG_CONFIG_HOME", h.configDir)

	return h
}

// WriteConfig writes a config file where the CLI's config loader will find
// it, replacing the harness default of no config at all.
func (h *Harness) WriteConfig(content string) string {
	h.t.Helper()
	return NewFixture(h.t, h.configDir).WriteFile(filepath.Join("agentctx", "config.yaml"), content)
}

// ProjectRoot returns the isolated workspace root for this harness.
func (h *Harness) ProjectRoot() string {
	return h.projectRoot
}

// UserRoot returns the isolated global root for this harness.
func (h *Harness) UserRoot() string {
	return h.userRoot
}

// Project returns a fixture helper rooted at the workspace root.
func (h *Harness) Project() *Fixture {
	return NewFixture(h.t, h.projectRoot)
}

// User returns a fixture helper rooted at the global root.
func (h *Harness) User() *Fixture {
	return NewFixture(h.t, h.userRoot)
}

// Run executes a CLI command with the given arguments and captures the output.
// The command is run in an isolated environment with proper stdout capture.
func (h *Harness) Run(args ...string) *Result {
	h.t.Helper()

	if len(args) == 0 || args[0] != "agentctx" {
		args = append([]string{"agentctx"}, args...)
	}

	oldStdout := os.Stdout
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		h.t.Fatalf("failed to create stdout pipe: %v", err)
	}
	os.Stdout = stdoutW

	// Read stdout concurrently to avoid pipe buffer deadlock.
	// If the command outputs more than the pipe buffer size (~64KB),
	// it will block waiting for the buffer to drain.
	var stdoutBuf bytes.Buffer
	var copyErr error
	copyDone := make(chan struct{})
	go func() {
		defer close(copyDone)
		_, copyErr = io.Copy(&stdoutBuf, stdoutR)
	}()

	cmdErr := cli.Run(context.Background(), args)

	if err := stdoutW.Close(); err != nil {
		h.t.Fatalf("failed to close stdout pipe writer: %v", err)
	}
	os.Stdout = oldStdout

	<-copyDone
	if copyErr != nil {
		h.t.Fatalf("failed to read captured stdout: %v", copyErr)
	}

	exitCode := 0
	if cmdErr != nil {
		exitCode = 1
	}

	return &Result{
		Stdout:   stdoutBuf.String(),
		Err:      cmdErr,
		ExitCode: exitCode,
	}
}
