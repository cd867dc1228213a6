package entities

import "github.com/paulmach/orb/geojson"

const (
	LayoutVisibility  = "visibility"
	VisibilityVisible = "visible"
	VisibilityNone    = "none"
)

// MapStyle for reference see: https://docs.mapbox.com/style-spec/reference/root
type MapStyle struct {
	Version int               `json:"version"` // must be 8
	Name    string            `json:"name,omitempty"`
	Center  []float64         `json:"center,omitempty"`
	Zoom    float64           `json:"zoom,omitempty"`
	Layers  []Layer           `json:"layers"`
	Sources map[string]Source `json:"sources"`
}

// Expression for reference see: https://docs.mapbox.com/style-spec/reference/expressions
type Expression []any

// Layer for reference see: https://docs.mapbox.com/style-spec/reference/layers
type Layer struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Source      string     `json:"source"`
	SourceLayer string     `json:"source-layer,omitempty"`
	Filter      Expression `json:"filter,omitempty"`
	Layout      *Layout    `json:"layout,omitempty"`
	Paint       Paint      `json:"paint"`
}

// Layout for reference see: https://docs.mapbox.com/style-spec/reference/layers/#layout-property
type Layout struct {
	Visibility string   `json:"visibility,omitempty"`
	IconImage  string   `json:"icon-image,omitempty"`
	IconSize   *float64 `json:"icon-size,omitempty"`
}

// Paint for reference see: https://docs.mapbox.com/style-spec/reference/layers/#paint
type Paint struct {
	*FillLayer
	*CircleLayer
}

// FillLayer for reference see: https://docs.mapbox.com/style-spec/reference/layers#fill
type FillLayer struct {
	FillColor        *string  `json:"fill-color,omitempty"`
	FillOutlineColor *string  `json:"fill-outline-color,omitempty"`
	FillOpacity      *float64 `json:"fill-opacity,omitempty"`
}

// CircleLayer for reference see: https://docs.mapbox.com/style-spec/reference/layers#circle
//
// CircleRadius and CircleColor hold either a literal or an Expression.
type CircleLayer struct {
	CircleRadius  any      `json:"circle-radius,omitempty"`
	CircleColor   any      `json:"circle-color,omitempty"`
	CircleOpacity *float64 `json:"circle-opacity,omitempty"`
}

// Source for reference see: https://docs.mapbox.com/style-spec/reference/sources
type Source struct {
	Type      string                     `json:"type"`
	URL       string                     `json:"url,omitempty"`
	TilesURLs []string                   `json:"tiles,omitempty"`
	Data      *geojson.FeatureCollection `json:"data,omitempty"`
}

// Image is a raster registered with the map under Name, referenced by symbol layers.
type Image struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
