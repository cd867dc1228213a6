package entities

// FeatureTarget addresses the render state of a single feature.
type FeatureTarget struct {
	Source      string    `json:"source"`
	SourceLayer string    `json:"sourceLayer,omitempty"`
	ID          FeatureID `json:"id"`
}

// FeatureState is the transient per-feature state driving conditional styling.
type FeatureState struct {
	Hover bool `json:"hover"`
}
