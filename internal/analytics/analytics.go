package analytics

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Envelope is what we store with every event.
// Backend-trustable fields only.
type Envelope struct {
	SessionID    string
	Platform     string
	AppVersion   string
	DeviceLocale string
}

// FromRequest extracts event envelope fields from request headers.
func FromRequest(r *http.Request) Envelope {
	platform := strings.TrimSpace(r.Header.Get("X-Platform"))
	if platform == "" {
		platform = "unknown"
	} else {
		platform = strings.ToLower(platform)
		if platform != "ios" && platform != "android" && platform != "web" {
			platform = "unknown"
		}
	}

	appVer := strings.TrimSpace(r.Header.Get("X-App-Version"))
	locale := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if locale == "" {
		locale = strings.TrimSpace(r.Header.Get("X-Device-Locale"))
	}

	sessionID := strings.TrimSpace(r.Header.Get("X-Session-Id"))

	return Envelope{
		SessionID:    sessionID,
		Platform:     platform,
		AppVersion:   appVer,
		DeviceLocale: locale,
	}
}

// Client-provided idempotency key (optional).
// If present and duplicates, the event is dropped.
func SourceEventKeyFromRequest(r *http.Request) string {
	// preferred: Idempotency-Key header
	k := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if k != "" {
		return k
	}
	// fallback
	return strings.TrimSpace(r.Header.Get("X-Source-Event-Key"))
}

type Event struct {
	EventID        string         `json:"event_id"`
	EventName      string         `json:"event_name"`
	EventTime      time.Time      `json:"event_time"`
	SessionID      string         `json:"session_id,omitempty"`
	Platform       string         `json:"platform"`
	AppVersion     string         `json:"app_version,omitempty"`
	DeviceLocale   string         `json:"device_locale,omitempty"`
	SourceEventKey string         `json:"source_event_key,omitempty"`
	Properties     map[string]any `json:"properties,omitempty"`
}

// Journal appends one JSON line per event. Duplicate source event keys
// are remembered per process, mirroring an ON CONFLICT DO NOTHING insert.
type Journal struct {
	mu   sync.Mutex
	w    io.Writer
	seen map[string]struct{}
}

func NewJournal(w io.Writer) *Journal {
	return &Journal{w: w, seen: make(map[string]struct{})}
}

// Open creates the journal file (and any missing parent directory) in
// append mode.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("analytics: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	return NewJournal(f), nil
}

// Log appends one analytics event. Never breaks the caller's flow: a
// nil journal, an empty event name or a marshal failure are all no-ops.
func (j *Journal) Log(eventName string, env Envelope, props map[string]any, sourceEventKey string) error {
	if j == nil || eventName == "" {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if sourceEventKey != "" {
		if _, dup := j.seen[sourceEventKey]; dup {
			return nil
		}
		j.seen[sourceEventKey] = struct{}{}
	}

	e := Event{
		EventID:        uuid.NewString(),
		EventName:      eventName,
		EventTime:      time.Now().UTC(),
		SessionID:      env.SessionID,
		Platform:       env.Platform,
		AppVersion:     env.AppVersion,
		DeviceLocale:   env.DeviceLocale,
		SourceEventKey: sourceEventKey,
		Properties:     props,
	}

	b, err := json.Marshal(e)
	if err != nil {
		// if props can't marshal, don't break core flow
		return nil
	}

	_, err = j.w.Write(append(b, '\n'))
	return err
}
