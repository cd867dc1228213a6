package service

import (
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
)

const (
	DefaultVenueSourceID    = "radius3-locations"
	DefaultVenueTilesetURL  = "mapbox://zoezhuoli.bngr19y3"
	DefaultVenueSourceLayer = "points-2mn1e9"
	DefaultMarkerLayerID    = "radius3-layer"
	DefaultCircleOpacity    = 0.1
)

type MarkerLayerConfig struct {
	SourceID      string
	Source        entities.Source
	SourceLayer   string
	LayerID       string
	CircleOpacity float64
	Home          entities.Camera
}

type IconConfig struct {
	Location   string
	Name       string
	LayerID    string
	Size       float64
	MarkerType string
}

type BoundaryConfig struct {
	Location     string
	SourceID     string
	LayerID      string
	FillColor    string
	FillOpacity  float64
	OutlineColor string
}

// MarkerLayer declares the circle layer of the venue markers. It depends on
// nothing but the table and the config.
func MarkerLayer(cfg MarkerLayerConfig, table *StyleEncodingTable) entities.Layer {
	opacity := cfg.CircleOpacity

	return entities.Layer{
		ID:          cfg.LayerID,
		Type:        "circle",
		Source:      cfg.SourceID,
		SourceLayer: cfg.SourceLayer,
		Layout:      &entities.Layout{Visibility: entities.VisibilityVisible},
		Paint: entities.Paint{
			CircleLayer: &entities.CircleLayer{
				CircleRadius:  table.RadiusExpression(),
				CircleColor:   table.ColorExpression(),
				CircleOpacity: &opacity,
			},
		},
	}
}

// CenterMarkerLayer declares the symbol layer placing the icon on venues of
// the configured marker type.
func CenterMarkerLayer(icon IconConfig, markers MarkerLayerConfig) entities.Layer {
	size := icon.Size

	return entities.Layer{
		ID:          icon.LayerID,
		Type:        "symbol",
		Source:      markers.SourceID,
		SourceLayer: markers.SourceLayer,
		Filter:      entities.Expression{"==", entities.Expression{"get", entities.PropertyType}, icon.MarkerType},
		Layout: &entities.Layout{
			IconImage: icon.Name,
			IconSize:  &size,
		},
	}
}

// BoundaryLayer declares the translucent fill over the boundary source.
func BoundaryLayer(boundary BoundaryConfig) entities.Layer {
	fillColor := boundary.FillColor
	outlineColor := boundary.OutlineColor
	opacity := boundary.FillOpacity

	return entities.Layer{
		ID:     boundary.LayerID,
		Type:   "fill",
		Source: boundary.SourceID,
		Paint: entities.Paint{
			FillLayer: &entities.FillLayer{
				FillColor:        &fillColor,
				FillOutlineColor: &outlineColor,
				FillOpacity:      &opacity,
			},
		},
	}
}
