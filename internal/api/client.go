package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// Client talks to the pipeline backend over HTTP/JSON.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *slog.Logger
}

// Options configures client construction.
type Options struct {
	// BaseURL is the backend root, e.g. http://localhost:8080. A missing
	// scheme defaults to http. Any path, query, or fragment is discarded.
	BaseURL string
	// Timeout bounds each request end-to-end. Zero means the default.
	Timeout time.Duration
	Logger  *slog.Logger
}

// New builds a client for the given backend base URL.
func New(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		return nil, fmt.Errorf("api client: base URL is empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("api client: parse base URL: %w", err)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("api client: base URL %q has no host", opts.BaseURL)
	}
	base.Path = ""
	base.RawQuery = ""
	base.Fragment = ""

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		base:   base,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}, nil
}

// BaseURL reports the normalized backend root.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// GetSettings fetches the singleton configuration record.
func (c *Client) GetSettings(ctx context.Context) (*Setting, error) {
	var out Setting
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings replaces settings fields and returns the persisted record.
// The server response is authoritative; no local merge happens here.
func (c *Client) UpdateSettings(ctx context.Context, update SettingUpdate) (*Setting, error) {
	var out Setting
	if err := c.do(ctx, http.MethodPut, "/api/settings", nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RunPoll triggers an out-of-band poll cycle. It returns once the backend
// acknowledges the enqueue, not when the cycle completes.
func (c *Client) RunPoll(ctx context.Context) (*PollRunResponse, error) {
	var out PollRunResponse
	if err := c.do(ctx, http.MethodPost, "/api/poll/run", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTasks fetches one page of tasks in backend order.
func (c *Client) ListTasks(ctx context.Context, limit, offset int) (*TaskList, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	var out TaskList
	if err := c.do(ctx, http.MethodGet, "/api/tasks", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTask fetches one task with its embedded comment and deliveries.
// A 404 satisfies errors.Is(err, ErrNotFound).
func (c *Client) GetTask(ctx context.Context, id int64) (*Task, error) {
	var out Task
	path := fmt.Sprintf("/api/tasks/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health probes backend liveness.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/healthz", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// errorBody is the backend's error envelope. Only the human-readable message
// is assumed extractable; anything else degrades to a status-line message.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.base.ResolveReference(&url.URL{Path: path, RawQuery: query.Encode()})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return transportError(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(started)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		_ = json.Unmarshal(raw, &eb)
		return serverError(resp.StatusCode, eb.Code, strings.TrimSpace(eb.Message))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return serverError(resp.StatusCode, "", fmt.Sprintf("decode response: %v", err))
	}
	return nil
}
