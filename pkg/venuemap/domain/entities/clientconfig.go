package entities

// ClientConfig is what the browser needs to create the map and open a session.
type ClientConfig struct {
	AccessToken   string    `json:"accessToken"`
	BaseStyle     string    `json:"baseStyle"`
	Center        []float64 `json:"center"`
	Zoom          float64   `json:"zoom"`
	MarkerLayerID string    `json:"markerLayerId"`
	SessionPath   string    `json:"sessionPath"`
}
