package service

import (
	"context"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
)

type MapStyleService interface {
	GetMapStyle(ctx context.Context) (entities.MapStyle, error)
}

type mapStyleService struct {
	markers MarkerLayerConfig
	icon    IconConfig
	table   *StyleEncodingTable
}

func NewMapStyleService(markers MarkerLayerConfig, icon IconConfig, table *StyleEncodingTable) MapStyleService {
	return &mapStyleService{
		markers: markers,
		icon:    icon,
		table:   table,
	}
}

func (m *mapStyleService) GetMapStyle(ctx context.Context) (entities.MapStyle, error) {
	return m.venueMapStyle(), nil
}

// venueMapStyle holds the declarations every session makes synchronously,
// plus the center marker layer whose icon arrives with the session.
func (m *mapStyleService) venueMapStyle() entities.MapStyle {
	layers := []entities.Layer{MarkerLayer(m.markers, m.table)}
	if m.icon.LayerID != "" {
		layers = append(layers, CenterMarkerLayer(m.icon, m.markers))
	}

	return entities.MapStyle{
		Version: 8,
		Name:    "venuemap",
		Center:  []float64{m.markers.Home.Center.Lon(), m.markers.Home.Center.Lat()},
		Zoom:    m.markers.Home.Zoom,
		Layers:  layers,
		Sources: map[string]entities.Source{
			m.markers.SourceID: m.markers.Source,
		},
	}
}
