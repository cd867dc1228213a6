package service

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/surface"
	"github.com/paulmach/orb"
)

const telFallback = "N/A"

var popupTemplate = template.Must(template.New("popup").Parse(`<div style="font-family: Arial, sans-serif; padding: 8px; background: #1e1e1e; color: white; border-radius: 5px;">
<h3 style="margin: 0; font-weight: bold;">{{.Name}}</h3>
<p style="margin: 5px 0;">Type: {{.Type}}</p>
<p style="margin: 5px 0;">Tel: {{.Tel}}</p>
<p><a href="{{.Website}}" target="_blank" style="color: #00FFFF; text-decoration: none; font-weight: bold;">Visit Website</a></p>
</div>`))

// VenueDetails is what the info panel shows for a clicked venue.
type VenueDetails struct {
	Name    string
	Type    string
	Tel     string
	Website string
}

func DetailsOf(feature entities.EventFeature) VenueDetails {
	tel := feature.Property(entities.PropertyTel)
	if tel == "" {
		tel = telFallback
	}

	return VenueDetails{
		Name:    feature.Property(entities.PropertyName),
		Type:    feature.Property(entities.PropertyType),
		Tel:     tel,
		Website: feature.Property(entities.PropertyWebsite),
	}
}

func RenderPopup(details VenueDetails) (string, error) {
	var buf bytes.Buffer
	if err := popupTemplate.Execute(&buf, details); err != nil {
		return "", fmt.Errorf("failed to render popup: %w", err)
	}
	return buf.String(), nil
}

// MarkerLayerController owns the venue marker layer of one map surface.
type MarkerLayerController struct {
	surface surface.MapSurface
	table   *StyleEncodingTable
	cfg     MarkerLayerConfig
}

// NewMarkerLayerController declares the venue source and the marker layer on the surface.
func NewMarkerLayerController(s surface.MapSurface, table *StyleEncodingTable, cfg MarkerLayerConfig) (*MarkerLayerController, error) {
	if err := s.AddSource(cfg.SourceID, cfg.Source); err != nil {
		return nil, fmt.Errorf("failed to declare venue source: %w", err)
	}

	if err := s.AddLayer(MarkerLayer(cfg, table)); err != nil {
		return nil, fmt.Errorf("failed to declare marker layer: %w", err)
	}

	return &MarkerLayerController{
		surface: s,
		table:   table,
		cfg:     cfg,
	}, nil
}

// ToggleVisibility flips the marker layer between visible and none. An unset
// visibility counts as visible.
func (c *MarkerLayerController) ToggleVisibility() {
	current, _ := c.surface.LayoutProperty(c.cfg.LayerID, entities.LayoutVisibility)

	next := entities.VisibilityNone
	if current == entities.VisibilityNone {
		next = entities.VisibilityVisible
	}

	if err := c.surface.SetLayoutProperty(c.cfg.LayerID, entities.LayoutVisibility, next); err != nil {
		// the layer is declared in NewMarkerLayerController and never removed
		panic(fmt.Sprintf("marker layer vanished: %v", err))
	}
}

func (c *MarkerLayerController) ResetView() {
	c.surface.FlyTo(c.cfg.Home)
}

// Click opens the info panel for the first clicked feature at lngLat.
func (c *MarkerLayerController) Click(features []entities.EventFeature, lngLat orb.Point) {
	if len(features) == 0 {
		return
	}

	html, err := RenderPopup(DetailsOf(features[0]))
	if err != nil {
		c.surface.ReportError(err)
		return
	}

	c.surface.ShowPopup(entities.Popup{
		LngLat:      lngLat,
		HTML:        html,
		CloseButton: false,
	})
}
