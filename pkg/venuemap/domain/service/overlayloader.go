package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"

	"github.com/paulkoehlerdev/VenueMap/pkg/libraries/metrics"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/repository"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/surface"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/sync/errgroup"
)

var ErrNoPolygon = errors.New("boundary document contains no polygon")

// OverlayLoader loads the center icon and the boundary polygon onto a map surface.
type OverlayLoader struct {
	resources repository.ResourceRepository
	logger    *slog.Logger

	markers  MarkerLayerConfig
	icon     IconConfig
	boundary BoundaryConfig
}

func NewOverlayLoader(resources repository.ResourceRepository, logger *slog.Logger, markers MarkerLayerConfig, icon IconConfig, boundary BoundaryConfig) *OverlayLoader {
	return &OverlayLoader{
		resources: resources,
		logger:    logger,
		markers:   markers,
		icon:      icon,
		boundary:  boundary,
	}
}

// Load runs both loads concurrently and waits for them. A failed boundary is
// logged; a failed icon is returned. Neither load cancels the other.
func (l *OverlayLoader) Load(ctx context.Context, s surface.MapSurface) error {
	var g errgroup.Group

	g.Go(func() error {
		return l.LoadIcon(ctx, s)
	})

	g.Go(func() error {
		if err := l.LoadBoundary(ctx, s); err != nil {
			l.logger.Error("failed to load boundary overlay", "location", l.boundary.Location, "error", err)
		}
		return nil
	})

	return g.Wait()
}

// LoadIcon registers the icon once and declares the center marker layer.
func (l *OverlayLoader) LoadIcon(ctx context.Context, s surface.MapSurface) error {
	err := l.loadIcon(ctx, s)
	recordOverlay(metrics.OverlayIcon, err)
	return err
}

func (l *OverlayLoader) loadIcon(ctx context.Context, s surface.MapSurface) error {
	data, err := l.resources.Fetch(ctx, l.icon.Location)
	if err != nil {
		return fmt.Errorf("failed to fetch icon: %w", err)
	}

	img, err := decodeImage(l.icon.Name, data)
	if err != nil {
		return err
	}

	if !s.HasImage(img.Name) {
		if err := s.AddImage(img); err != nil && !errors.Is(err, surface.ErrDuplicateImage) {
			return fmt.Errorf("failed to register icon: %w", err)
		}
	}

	err = s.AddLayer(CenterMarkerLayer(l.icon, l.markers))
	if err != nil && !errors.Is(err, surface.ErrDuplicateLayer) {
		return fmt.Errorf("failed to declare center marker layer: %w", err)
	}

	l.logger.Debug("icon overlay loaded", "name", img.Name, "width", img.Width, "height", img.Height)
	return nil
}

// LoadBoundary declares the boundary source and its fill layer.
func (l *OverlayLoader) LoadBoundary(ctx context.Context, s surface.MapSurface) error {
	err := l.loadBoundary(ctx, s)
	recordOverlay(metrics.OverlayBoundary, err)
	return err
}

func (l *OverlayLoader) loadBoundary(ctx context.Context, s surface.MapSurface) error {
	data, err := l.resources.Fetch(ctx, l.boundary.Location)
	if err != nil {
		return fmt.Errorf("failed to fetch boundary: %w", err)
	}

	fc, err := ParseBoundary(data)
	if err != nil {
		return err
	}

	if err := s.AddSource(l.boundary.SourceID, entities.Source{Type: "geojson", Data: fc}); err != nil {
		return fmt.Errorf("failed to declare boundary source: %w", err)
	}

	if err := s.AddLayer(BoundaryLayer(l.boundary)); err != nil {
		return fmt.Errorf("failed to declare boundary layer: %w", err)
	}

	l.logger.Debug("boundary overlay loaded", "features", len(fc.Features))
	return nil
}

func decodeImage(name string, data []byte) (entities.Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return entities.Image{}, fmt.Errorf("failed to decode icon: %w", err)
	}

	return entities.Image{
		Name:   name,
		URL:    fmt.Sprintf("data:image/%s;base64,%s", format, base64.StdEncoding.EncodeToString(data)),
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// ParseBoundary accepts a FeatureCollection, a Feature or a bare Geometry and
// returns it as a FeatureCollection holding at least one polygon.
func ParseBoundary(data []byte) (*geojson.FeatureCollection, error) {
	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("failed to parse boundary document: %w", err)
	}

	var fc *geojson.FeatureCollection
	switch header.Type {
	case "FeatureCollection":
		collection, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse boundary feature collection: %w", err)
		}
		fc = collection
	case "Feature":
		feature, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse boundary feature: %w", err)
		}
		fc = geojson.NewFeatureCollection().Append(feature)
	default:
		geometry, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse boundary geometry: %w", err)
		}
		fc = geojson.NewFeatureCollection().Append(geojson.NewFeature(geometry.Geometry()))
	}

	for _, f := range fc.Features {
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
			return fc, nil
		}
	}

	return nil, ErrNoPolygon
}

func recordOverlay(overlay string, err error) {
	result := metrics.ResultOK
	if err != nil {
		result = metrics.ResultError
	}
	metrics.OverlayLoadsTotal.WithLabelValues(overlay, result).Inc()
}
