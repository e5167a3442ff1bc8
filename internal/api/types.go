package api

import "time"

// ConnectorMode selects the comment source integration on the backend.
type ConnectorMode string

const (
	ConnectorModeMock ConnectorMode = "mock"
	ConnectorModeMCP  ConnectorMode = "mcp"
)

// TaskStatus is the backend-owned lifecycle state of a generation task.
// The canonical forward progression is PENDING → EXTRACTED → SUBMITTED →
// RUNNING → SUCCEEDED → EMAILED; FAILED is terminal from any non-terminal
// state. The client never computes transitions, it renders whatever status
// value the snapshot carries.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusExtracted TaskStatus = "EXTRACTED"
	TaskStatusSubmitted TaskStatus = "SUBMITTED"
	TaskStatusRunning   TaskStatus = "RUNNING"
	TaskStatusSucceeded TaskStatus = "SUCCEEDED"
	TaskStatusEmailed   TaskStatus = "EMAILED"
	TaskStatusFailed    TaskStatus = "FAILED"
)

// RequestType distinguishes image from video generation requests.
type RequestType string

const (
	RequestTypeImage RequestType = "image"
	RequestTypeVideo RequestType = "video"
)

// DeliveryStatus reports the outcome of one email send attempt. Any value
// other than SENT is a failure.
type DeliveryStatus string

const DeliveryStatusSent DeliveryStatus = "SENT"

// Setting is the singleton backend configuration record. The client only
// reads and replaces field values; created_at/updated_at are backend-assigned.
type Setting struct {
	ID                 int64     `json:"id"`
	ConnectorMode      string    `json:"connector_mode"`
	MCPServerCmd       *string   `json:"mcp_server_cmd,omitempty"`
	MCPServerURL       *string   `json:"mcp_server_url,omitempty"`
	MCPAuth            *string   `json:"mcp_auth,omitempty"`
	NoteTarget         string    `json:"note_target"`
	PollingIntervalSec int       `json:"polling_interval_sec"`
	LLMBaseURL         *string   `json:"llm_base_url,omitempty"`
	LLMAPIKey          *string   `json:"llm_api_key,omitempty"`
	LLMModel           *string   `json:"llm_model,omitempty"`
	LLMTimeoutSec      int       `json:"llm_timeout_sec"`
	IntentThreshold    float64   `json:"intent_threshold"`
	SMTPHost           *string   `json:"smtp_host,omitempty"`
	SMTPPort           *int      `json:"smtp_port,omitempty"`
	SMTPUser           *string   `json:"smtp_user,omitempty"`
	SMTPPass           *string   `json:"smtp_pass,omitempty"`
	SMTPFrom           *string   `json:"smtp_from,omitempty"`
	ProviderJSON       string    `json:"provider_json"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SettingUpdate is the partial-replacement payload for PUT /api/settings.
// Nil fields are left untouched by the backend.
type SettingUpdate struct {
	ConnectorMode      *string  `json:"connector_mode,omitempty"`
	MCPServerCmd       *string  `json:"mcp_server_cmd,omitempty"`
	MCPServerURL       *string  `json:"mcp_server_url,omitempty"`
	MCPAuth            *string  `json:"mcp_auth,omitempty"`
	NoteTarget         *string  `json:"note_target,omitempty"`
	PollingIntervalSec *int     `json:"polling_interval_sec,omitempty"`
	LLMBaseURL         *string  `json:"llm_base_url,omitempty"`
	LLMAPIKey          *string  `json:"llm_api_key,omitempty"`
	LLMModel           *string  `json:"llm_model,omitempty"`
	LLMTimeoutSec      *int     `json:"llm_timeout_sec,omitempty"`
	IntentThreshold    *float64 `json:"intent_threshold,omitempty"`
	SMTPHost           *string  `json:"smtp_host,omitempty"`
	SMTPPort           *int     `json:"smtp_port,omitempty"`
	SMTPUser           *string  `json:"smtp_user,omitempty"`
	SMTPPass           *string  `json:"smtp_pass,omitempty"`
	SMTPFrom           *string  `json:"smtp_from,omitempty"`
	ProviderJSON       *string  `json:"provider_json,omitempty"`
}

// Comment is the originating comment embedded in a task fetched by ID.
type Comment struct {
	ID               int64      `json:"id"`
	NoteTarget       string     `json:"note_target"`
	CommentUID       string     `json:"comment_uid"`
	UserName         *string    `json:"user_name,omitempty"`
	Content          string     `json:"content"`
	CommentCreatedAt *time.Time `json:"comment_created_at,omitempty"`
	IngestedAt       time.Time  `json:"ingested_at"`
}

// Delivery is one email send attempt for a task. A task accumulates one
// record per attempt; list order is the backend's attempt order.
type Delivery struct {
	ID      int64          `json:"id"`
	TaskID  int64          `json:"task_id"`
	EmailTo string         `json:"email_to"`
	Status  DeliveryStatus `json:"status"`
	SentAt  *time.Time     `json:"sent_at,omitempty"`
	Error   *string        `json:"error,omitempty"`
}

// Task is one generation request lifecycle instance. Provider fields are
// populated progressively as the task advances. Comment and Deliveries are
// embedded only on single-task fetches.
type Task struct {
	ID              int64       `json:"id"`
	CommentID       int64       `json:"comment_id"`
	Status          TaskStatus  `json:"status"`
	RequestType     RequestType `json:"request_type"`
	Email           *string     `json:"email,omitempty"`
	Prompt          *string     `json:"prompt,omitempty"`
	Confidence      *float64    `json:"confidence,omitempty"`
	ProviderName    *string     `json:"provider_name,omitempty"`
	ProviderJobID   *string     `json:"provider_job_id,omitempty"`
	ResultObjectKey *string     `json:"result_object_key,omitempty"`
	ResultURL       *string     `json:"result_url,omitempty"`
	Error           *string     `json:"error,omitempty"`
	RetryCount      int         `json:"retry_count"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Comment         *Comment    `json:"comment,omitempty"`
	Deliveries      []Delivery  `json:"deliveries,omitempty"`
}

// TaskList is the paginated response of GET /api/tasks. Ordering is
// backend-defined; the client imposes no additional sort.
type TaskList struct {
	Tasks  []Task `json:"tasks"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// PollRunResponse acknowledges an enqueued poll cycle.
type PollRunResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the liveness probe payload.
type HealthResponse struct {
	Status string `json:"status"`
}
