package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPollRun(t *testing.T) {
	backend := setupCLITestEnv(t)

	out, _, err := runCLI(t, backend, "poll", "run")
	if err != nil {
		t.Fatalf("poll run: %v", err)
	}
	requireContains(t, out, "poll cycle enqueued")

	backend.mu.Lock()
	defer backend.mu.Unlock()
	if backend.polls != 1 {
		t.Fatalf("expected exactly one poll trigger, got %d", backend.polls)
	}
}

func TestHealth(t *testing.T) {
	backend := setupCLITestEnv(t)

	out, _, err := runCLI(t, backend, "health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	requireContains(t, out, "is ok")
}

func TestHealthBackendDown(t *testing.T) {
	backend := setupCLITestEnv(t)
	backend.server.Close()

	_, _, err := runCLI(t, backend, "health")
	if err == nil {
		t.Fatal("expected an error when the backend is unreachable")
	}
	requireContains(t, err.Error(), "verify the API server is running")
}

func TestOverviewShowsLinks(t *testing.T) {
	backend := setupCLITestEnv(t)

	out, _, err := runCLI(t, backend, "overview")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	requireContains(t, out, "== Pipeline ==")
	requireContains(t, out, "Extract")
	requireContains(t, out, "tasks show <id>")
	requireContains(t, out, "Mailhog")
	requireContains(t, out, backend.server.URL)
}

func TestConfigInitWritesSample(t *testing.T) {
	setupCLITestEnv(t)

	target := filepath.Join(t.TempDir(), "config.toml")
	cmd := newRootCommand()
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	requireContains(t, string(content), "[api]")

	cmd = newRootCommand()
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected refusal to overwrite without --overwrite")
	}
}
