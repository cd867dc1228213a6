package service

import (
	"context"
	"fmt"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/repository"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
)

type MapTilesService interface {
	GetMapTile(ctx context.Context, tile maptile.Tile, acceptGzip bool) ([]byte, error)
}

type mapTilesService struct {
	venueRepository repository.VenueRepository
	sourceLayer     string
}

func NewMapTilesService(venueRepository repository.VenueRepository, sourceLayer string) MapTilesService {
	return &mapTilesService{
		venueRepository: venueRepository,
		sourceLayer:     sourceLayer,
	}
}

func (m mapTilesService) GetMapTile(ctx context.Context, tile maptile.Tile, acceptGzip bool) ([]byte, error) {
	collections, err := m.getFeaturesFor(ctx, tile)
	if err != nil {
		return nil, err
	}

	layers := mvt.NewLayers(collections)
	layers.ProjectToTile(tile)

	layers = m.cleanLayers(layers)

	var data []byte
	if acceptGzip {
		data, err = mvt.MarshalGzipped(layers)
	} else {
		data, err = mvt.Marshal(layers)
	}
	if err != nil {
		return nil, fmt.Errorf("marshal layers failed: %w", err)
	}

	return data, nil
}

func (m mapTilesService) getFeaturesFor(ctx context.Context, tile maptile.Tile) (map[string]*geojson.FeatureCollection, error) {
	venues, err := m.venueRepository.GetVenues(ctx, tile.Bound())
	if err != nil {
		return nil, fmt.Errorf("failed to get venues for tile %d/%d/%d: %w", tile.Z, tile.X, tile.Y, err)
	}

	fc := geojson.NewFeatureCollection()
	for _, venue := range venues {
		fc.Append(venue.Feature())
	}

	return map[string]*geojson.FeatureCollection{
		m.sourceLayer: fc,
	}, nil
}

func (m mapTilesService) cleanLayers(layers mvt.Layers) mvt.Layers {
	layers.Clip(mvt.MapboxGLDefaultExtentBound)
	layers.RemoveEmpty(1.0, 2.0)
	return layers
}
