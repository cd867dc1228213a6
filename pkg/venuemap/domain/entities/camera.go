package entities

import "github.com/paulmach/orb"

// Camera is the map view position.
type Camera struct {
	Center orb.Point `json:"center"`
	Zoom   float64   `json:"zoom"`
}
