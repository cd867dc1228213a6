package entities

import "github.com/paulmach/orb"

type EventType string

const (
	EventPointerMove  EventType = "pointermove"
	EventPointerLeave EventType = "pointerleave"
	EventClick        EventType = "click"
	EventCommand      EventType = "command"
	EventMoveEnd      EventType = "moveend"
)

// Named UI commands.
const (
	CommandToggleLayer = "toggle-layer"
	CommandResetView   = "reset-view"
)

// EventFeature is a rendered feature reported under the pointer.
type EventFeature struct {
	ID         *FeatureID     `json:"id,omitempty"`
	Properties map[string]any `json:"properties"`
}

func (f EventFeature) Property(key string) string {
	return PropertyString(f.Properties, key)
}

// Event is an interaction forwarded by the browser.
type Event struct {
	Type     EventType      `json:"type"`
	Features []EventFeature `json:"features,omitempty"`
	LngLat   orb.Point      `json:"lngLat"`
	Zoom     float64        `json:"zoom,omitempty"`
	Name     string         `json:"name,omitempty"`
}
