package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

// MatchesRefreshedEvent tells connected clients the active feed changed and
// their cached match lists are stale.
type MatchesRefreshedEvent struct {
	Type      string `json:"type"`
	Source    string `json:"source"`
	JobCount  int    `json:"job_count"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyMatchesRefreshed(source string, jobCount int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := MatchesRefreshedEvent{
		Type:      "matches_refreshed",
		Source:    strings.TrimSpace(source),
		JobCount:  jobCount,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}

// Notifier adapts the hub to the ingest usecase's notification port.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (*Notifier) MatchesRefreshed(source string, jobCount int) {
	NotifyMatchesRefreshed(source, jobCount)
}
