package publishers

import (
	"time"

	"github.com/TodayWantLook/Crawler/internal/domain"
)

// Actions carried by media events.
const (
	ActionInserted = "webtoon.inserted"
	ActionUpdated  = "webtoon.updated"
)

// Event is the payload published downstream after a document is persisted.
type Event struct {
	Service     string       `json:"service"`
	Action      string       `json:"action"`
	Media       domain.Media `json:"media"`
	CollectedAt time.Time    `json:"collected_at"`
}

// NewEvent constructs an Event for the given service + action. Short action
// names ("inserted"/"updated") are expanded to their event names.
func NewEvent(service, action string, media domain.Media) Event {
	switch action {
	case "inserted":
		action = ActionInserted
	case "updated":
		action = ActionUpdated
	}
	return Event{
		Service:     service,
		Action:      action,
		Media:       media,
		CollectedAt: time.Now().UTC(),
	}
}
