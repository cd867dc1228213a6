package entities

import "github.com/paulmach/orb"

// Popup is a transient, non-modal info panel anchored at LngLat.
type Popup struct {
	LngLat      orb.Point `json:"lngLat"`
	HTML        string    `json:"html"`
	CloseButton bool      `json:"closeButton"`
}
