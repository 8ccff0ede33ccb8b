package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// CatalogUpdatedEvent is pushed to clients after a reload swaps in a new
// engine, so consumers know cached rankings on their side are stale.
type CatalogUpdatedEvent struct {
	Type      string `json:"type"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyCatalogUpdated(count int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := CatalogUpdatedEvent{
		Type:      "catalog_updated",
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}

// Notifier adapts the package-level notify entry point to the interface
// the catalog usecase expects.
type Notifier struct{}

func (Notifier) CatalogUpdated(count int) {
	NotifyCatalogUpdated(count)
}
