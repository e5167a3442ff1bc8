package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"xhsdash/internal/api"
)

// fakeBackend is an in-memory pipeline API used by CLI tests.
type fakeBackend struct {
	mu      sync.Mutex
	setting api.Setting
	tasks   []api.Task
	polls   int
	server  *httptest.Server
}

func setupCLITestEnv(t *testing.T) *fakeBackend {
	t.Helper()

	// Keep the default config search path away from the developer's real home.
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XHSDASH_API_URL", "")

	backend := &fakeBackend{
		setting: api.Setting{
			ID:                 1,
			ConnectorMode:      "mock",
			NoteTarget:         "demo-note",
			PollingIntervalSec: 120,
			LLMTimeoutSec:      15,
			IntentThreshold:    0.7,
			ProviderJSON:       "{}",
			CreatedAt:          time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt:          time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, api.HealthResponse{Status: "ok"})
	})
	mux.HandleFunc("GET /api/settings", func(w http.ResponseWriter, r *http.Request) {
		backend.mu.Lock()
		defer backend.mu.Unlock()
		writeBody(w, http.StatusOK, backend.setting)
	})
	mux.HandleFunc("PUT /api/settings", func(w http.ResponseWriter, r *http.Request) {
		var update api.SettingUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			writeBody(w, http.StatusBadRequest, map[string]string{"code": "VALIDATION", "message": err.Error()})
			return
		}
		backend.mu.Lock()
		defer backend.mu.Unlock()
		backend.applyUpdate(update)
		backend.setting.UpdatedAt = backend.setting.UpdatedAt.Add(time.Minute)
		writeBody(w, http.StatusOK, backend.setting)
	})
	mux.HandleFunc("POST /api/poll/run", func(w http.ResponseWriter, r *http.Request) {
		backend.mu.Lock()
		backend.polls++
		backend.mu.Unlock()
		writeBody(w, http.StatusOK, api.PollRunResponse{Message: "poll cycle enqueued"})
	})
	mux.HandleFunc("GET /api/tasks", func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		backend.mu.Lock()
		defer backend.mu.Unlock()
		tasks := backend.tasks
		if offset < len(tasks) {
			tasks = tasks[offset:]
		} else {
			tasks = nil
		}
		if limit > 0 && limit < len(tasks) {
			tasks = tasks[:limit]
		}
		page := make([]api.Task, len(tasks))
		copy(page, tasks)
		for i := range page {
			page[i].Comment = nil
			page[i].Deliveries = nil
		}
		writeBody(w, http.StatusOK, api.TaskList{Tasks: page, Limit: limit, Offset: offset})
	})
	mux.HandleFunc("GET /api/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			writeBody(w, http.StatusBadRequest, map[string]string{"code": "VALIDATION", "message": "invalid id"})
			return
		}
		backend.mu.Lock()
		defer backend.mu.Unlock()
		for _, task := range backend.tasks {
			if task.ID == id {
				writeBody(w, http.StatusOK, task)
				return
			}
		}
		writeBody(w, http.StatusNotFound, map[string]string{"code": "NOT_FOUND", "message": "task not found"})
	})

	backend.server = httptest.NewServer(mux)
	t.Cleanup(backend.server.Close)
	return backend
}

func (b *fakeBackend) applyUpdate(update api.SettingUpdate) {
	s := &b.setting
	if update.ConnectorMode != nil {
		s.ConnectorMode = *update.ConnectorMode
	}
	if update.MCPServerCmd != nil {
		s.MCPServerCmd = update.MCPServerCmd
	}
	if update.MCPServerURL != nil {
		s.MCPServerURL = update.MCPServerURL
	}
	if update.MCPAuth != nil {
		s.MCPAuth = update.MCPAuth
	}
	if update.NoteTarget != nil {
		s.NoteTarget = *update.NoteTarget
	}
	if update.PollingIntervalSec != nil {
		s.PollingIntervalSec = *update.PollingIntervalSec
	}
	if update.LLMBaseURL != nil {
		s.LLMBaseURL = update.LLMBaseURL
	}
	if update.LLMAPIKey != nil {
		s.LLMAPIKey = update.LLMAPIKey
	}
	if update.LLMModel != nil {
		s.LLMModel = update.LLMModel
	}
	if update.LLMTimeoutSec != nil {
		s.LLMTimeoutSec = *update.LLMTimeoutSec
	}
	if update.IntentThreshold != nil {
		s.IntentThreshold = *update.IntentThreshold
	}
	if update.SMTPHost != nil {
		s.SMTPHost = update.SMTPHost
	}
	if update.SMTPPort != nil {
		s.SMTPPort = update.SMTPPort
	}
	if update.SMTPUser != nil {
		s.SMTPUser = update.SMTPUser
	}
	if update.SMTPPass != nil {
		s.SMTPPass = update.SMTPPass
	}
	if update.SMTPFrom != nil {
		s.SMTPFrom = update.SMTPFrom
	}
	if update.ProviderJSON != nil {
		s.ProviderJSON = *update.ProviderJSON
	}
}

func (b *fakeBackend) addTask(task api.Task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = append(b.tasks, task)
}

func writeBody(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func runCLI(t *testing.T, backend *fakeBackend, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--api-url", backend.server.URL}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q to not contain %q", output, substr)
	}
}

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func sampleTask(id int64) api.Task {
	created := time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)
	return api.Task{
		ID:          id,
		CommentID:   id * 10,
		Status:      api.TaskStatusRunning,
		RequestType: api.RequestTypeImage,
		Email:       strPtr(fmt.Sprintf("user%d@example.com", id)),
		Prompt:      strPtr("a cat in a spacesuit"),
		Confidence:  floatPtr(0.842),
		CreatedAt:   created,
		UpdatedAt:   created.Add(5 * time.Minute),
	}
}
