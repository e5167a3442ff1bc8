package settings

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"xhsdash/internal/api"
)

// Parse-time fallbacks for numeric inputs. Unparsable or empty input falls
// back immediately; nothing is deferred to submission time.
const (
	FallbackPollingIntervalSec = 120
	FallbackIntentThreshold    = 0.7
	FallbackSMTPPort           = 1025
	FallbackLLMTimeoutSec      = 15
)

const maskedValue = "••••••••"

// Form wraps a fetched Setting as a mutable local copy.
type Form struct {
	setting api.Setting
}

// NewForm copies the fetched record into an editable form.
func NewForm(setting *api.Setting) *Form {
	return &Form{setting: *setting}
}

// Setting exposes the current local copy.
func (f *Form) Setting() *api.Setting {
	return &f.setting
}

type fieldSpec struct {
	secret bool
	get    func(*api.Setting) string
	set    func(*api.Setting, string) error
}

// fieldOrder drives settings display and mirrors the form layout: connector,
// LLM, then SMTP, with the provider passthrough last.
var fieldOrder = []string{
	"connector_mode",
	"note_target",
	"polling_interval_sec",
	"mcp_server_cmd",
	"mcp_server_url",
	"mcp_auth",
	"llm_base_url",
	"llm_api_key",
	"llm_model",
	"llm_timeout_sec",
	"intent_threshold",
	"smtp_host",
	"smtp_port",
	"smtp_user",
	"smtp_pass",
	"smtp_from",
	"provider_json",
}

var fields = map[string]fieldSpec{
	"connector_mode": {
		get: func(s *api.Setting) string { return s.ConnectorMode },
		set: func(s *api.Setting, v string) error {
			mode := strings.ToLower(strings.TrimSpace(v))
			if mode != string(api.ConnectorModeMock) && mode != string(api.ConnectorModeMCP) {
				return fmt.Errorf("connector_mode must be %q or %q", api.ConnectorModeMock, api.ConnectorModeMCP)
			}
			s.ConnectorMode = mode
			return nil
		},
	},
	"note_target": {
		get: func(s *api.Setting) string { return s.NoteTarget },
		set: func(s *api.Setting, v string) error { s.NoteTarget = v; return nil },
	},
	"polling_interval_sec": {
		get: func(s *api.Setting) string { return strconv.Itoa(s.PollingIntervalSec) },
		set: func(s *api.Setting, v string) error {
			s.PollingIntervalSec = parseIntOr(v, FallbackPollingIntervalSec)
			return nil
		},
	},
	"mcp_server_cmd": {
		get: func(s *api.Setting) string { return fromPtr(s.MCPServerCmd) },
		set: func(s *api.Setting, v string) error { s.MCPServerCmd = &v; return nil },
	},
	"mcp_server_url": {
		get: func(s *api.Setting) string { return fromPtr(s.MCPServerURL) },
		set: func(s *api.Setting, v string) error { s.MCPServerURL = &v; return nil },
	},
	"mcp_auth": {
		secret: true,
		get:    func(s *api.Setting) string { return fromPtr(s.MCPAuth) },
		set:    func(s *api.Setting, v string) error { s.MCPAuth = &v; return nil },
	},
	"llm_base_url": {
		get: func(s *api.Setting) string { return fromPtr(s.LLMBaseURL) },
		set: func(s *api.Setting, v string) error { s.LLMBaseURL = &v; return nil },
	},
	"llm_api_key": {
		secret: true,
		get:    func(s *api.Setting) string { return fromPtr(s.LLMAPIKey) },
		set:    func(s *api.Setting, v string) error { s.LLMAPIKey = &v; return nil },
	},
	"llm_model": {
		get: func(s *api.Setting) string { return fromPtr(s.LLMModel) },
		set: func(s *api.Setting, v string) error { s.LLMModel = &v; return nil },
	},
	"llm_timeout_sec": {
		get: func(s *api.Setting) string { return strconv.Itoa(s.LLMTimeoutSec) },
		set: func(s *api.Setting, v string) error {
			s.LLMTimeoutSec = parseIntOr(v, FallbackLLMTimeoutSec)
			return nil
		},
	},
	"intent_threshold": {
		get: func(s *api.Setting) string { return strconv.FormatFloat(s.IntentThreshold, 'g', -1, 64) },
		set: func(s *api.Setting, v string) error {
			s.IntentThreshold = parseFloatOr(v, FallbackIntentThreshold)
			return nil
		},
	},
	"smtp_host": {
		get: func(s *api.Setting) string { return fromPtr(s.SMTPHost) },
		set: func(s *api.Setting, v string) error { s.SMTPHost = &v; return nil },
	},
	"smtp_port": {
		get: func(s *api.Setting) string {
			if s.SMTPPort == nil {
				return ""
			}
			return strconv.Itoa(*s.SMTPPort)
		},
		set: func(s *api.Setting, v string) error {
			port := parseIntOr(v, FallbackSMTPPort)
			s.SMTPPort = &port
			return nil
		},
	},
	"smtp_user": {
		get: func(s *api.Setting) string { return fromPtr(s.SMTPUser) },
		set: func(s *api.Setting, v string) error { s.SMTPUser = &v; return nil },
	},
	"smtp_pass": {
		secret: true,
		get:    func(s *api.Setting) string { return fromPtr(s.SMTPPass) },
		set:    func(s *api.Setting, v string) error { s.SMTPPass = &v; return nil },
	},
	"smtp_from": {
		get: func(s *api.Setting) string { return fromPtr(s.SMTPFrom) },
		set: func(s *api.Setting, v string) error { s.SMTPFrom = &v; return nil },
	},
	"provider_json": {
		get: func(s *api.Setting) string { return s.ProviderJSON },
		set: func(s *api.Setting, v string) error { s.ProviderJSON = v; return nil },
	},
}

// Apply mutates one field from a key=value assignment. Unknown keys are
// errors so a typo cannot silently no-op; malformed numeric input falls back
// to the field's default instead of erroring.
func (f *Form) Apply(assignment string) error {
	key, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("invalid assignment %q: expected key=value", assignment)
	}
	key = strings.ToLower(strings.TrimSpace(key))
	spec, known := fields[key]
	if !known {
		return fmt.Errorf("unknown settings field %q (known fields: %s)", key, strings.Join(Keys(), ", "))
	}
	return spec.set(&f.setting, value)
}

// Update produces the save payload: the full local copy. Unset optionals stay
// nil and are omitted from the wire payload, which the backend treats as
// untouched; since the copy was fetched from the backend, that is equivalent
// to resending their current values.
func (f *Form) Update() api.SettingUpdate {
	s := &f.setting
	return api.SettingUpdate{
		ConnectorMode:      &s.ConnectorMode,
		MCPServerCmd:       s.MCPServerCmd,
		MCPServerURL:       s.MCPServerURL,
		MCPAuth:            s.MCPAuth,
		NoteTarget:         &s.NoteTarget,
		PollingIntervalSec: &s.PollingIntervalSec,
		LLMBaseURL:         s.LLMBaseURL,
		LLMAPIKey:          s.LLMAPIKey,
		LLMModel:           s.LLMModel,
		LLMTimeoutSec:      &s.LLMTimeoutSec,
		IntentThreshold:    &s.IntentThreshold,
		SMTPHost:           s.SMTPHost,
		SMTPPort:           s.SMTPPort,
		SMTPUser:           s.SMTPUser,
		SMTPPass:           s.SMTPPass,
		SMTPFrom:           s.SMTPFrom,
		ProviderJSON:       &s.ProviderJSON,
	}
}

// Rows renders the field catalog as key/value display rows. Secret fields
// are masked unless reveal is set.
func Rows(setting *api.Setting, reveal bool) [][]string {
	rows := make([][]string, 0, len(fieldOrder))
	for _, key := range fieldOrder {
		spec := fields[key]
		value := spec.get(setting)
		switch {
		case value == "":
			value = "-"
		case spec.secret && !reveal:
			value = maskedValue
		}
		rows = append(rows, []string{key, value})
	}
	return rows
}

// Keys lists all editable field names in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func parseIntOr(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseFloatOr(value string, fallback float64) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func fromPtr(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
