package infrastructure_test

import (
	"errors"
	"testing"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/surface"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/infrastructure"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var home = entities.Camera{Center: orb.Point{-79.3832, 43.6532}, Zoom: 12}

func newSurface() (*infrastructure.SessionSurface, *[]entities.Command) {
	var commands []entities.Command
	s := infrastructure.NewSessionSurface(home, func(cmd entities.Command) {
		commands = append(commands, cmd)
	})
	return s, &commands
}

func TestSessionSurface_SourcesAndLayers(t *testing.T) {
	s, commands := newSurface()

	require.NoError(t, s.AddSource("venues", entities.Source{Type: "vector", URL: "mapbox://x"}))
	assert.ErrorIs(t, s.AddSource("venues", entities.Source{Type: "vector"}), surface.ErrDuplicateSource)

	assert.ErrorIs(t, s.AddLayer(entities.Layer{ID: "range", Source: "boundary"}), surface.ErrUnknownSource)
	assert.False(t, s.HasLayer("range"))

	require.NoError(t, s.AddLayer(entities.Layer{ID: "markers", Type: "circle", Source: "venues"}))
	assert.ErrorIs(t, s.AddLayer(entities.Layer{ID: "markers", Source: "venues"}), surface.ErrDuplicateLayer)
	assert.True(t, s.HasLayer("markers"))

	require.Len(t, *commands, 2)
	assert.Equal(t, entities.OpAddSource, (*commands)[0].Op)
	assert.Equal(t, "venues", (*commands)[0].ID)
	assert.Equal(t, entities.OpAddLayer, (*commands)[1].Op)
	assert.Equal(t, "markers", (*commands)[1].Layer.ID)

	source, ok := s.Source("venues")
	assert.True(t, ok)
	assert.Equal(t, "mapbox://x", source.URL)
	assert.Len(t, s.Layers(), 1)
}

func TestSessionSurface_LayoutProperty(t *testing.T) {
	s, commands := newSurface()
	require.NoError(t, s.AddSource("venues", entities.Source{Type: "vector"}))
	require.NoError(t, s.AddLayer(entities.Layer{ID: "markers", Source: "venues", Layout: &entities.Layout{Visibility: entities.VisibilityVisible}}))
	require.NoError(t, s.AddLayer(entities.Layer{ID: "plain", Source: "venues"}))

	v, ok := s.LayoutProperty("markers", entities.LayoutVisibility)
	assert.True(t, ok)
	assert.Equal(t, entities.VisibilityVisible, v)

	v, ok = s.LayoutProperty("plain", entities.LayoutVisibility)
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = s.LayoutProperty("missing", entities.LayoutVisibility)
	assert.False(t, ok)

	require.NoError(t, s.SetLayoutProperty("markers", entities.LayoutVisibility, entities.VisibilityNone))
	v, _ = s.LayoutProperty("markers", entities.LayoutVisibility)
	assert.Equal(t, entities.VisibilityNone, v)

	assert.ErrorIs(t, s.SetLayoutProperty("missing", entities.LayoutVisibility, entities.VisibilityNone), surface.ErrUnknownLayer)

	last := (*commands)[len(*commands)-1]
	assert.Equal(t, entities.Command{
		Op:       entities.OpSetLayoutProperty,
		LayerID:  "markers",
		Property: entities.LayoutVisibility,
		Value:    entities.VisibilityNone,
	}, last)
}

func TestSessionSurface_Images(t *testing.T) {
	s, commands := newSurface()

	assert.False(t, s.HasImage("school-icon"))
	require.NoError(t, s.AddImage(entities.Image{Name: "school-icon", URL: "data:image/png;base64,"}))
	assert.True(t, s.HasImage("school-icon"))
	assert.ErrorIs(t, s.AddImage(entities.Image{Name: "school-icon"}), surface.ErrDuplicateImage)

	assert.Len(t, *commands, 1)
}

func TestSessionSurface_FeatureState(t *testing.T) {
	s, commands := newSurface()
	target := entities.FeatureTarget{Source: "venues", SourceLayer: "points", ID: entities.NumericFeatureID(42)}

	assert.False(t, s.FeatureState(target).Hover)

	s.SetFeatureState(target, entities.FeatureState{Hover: true})
	assert.True(t, s.FeatureState(target).Hover)
	assert.False(t, s.FeatureState(entities.FeatureTarget{Source: "venues", SourceLayer: "points", ID: entities.NumericFeatureID(7)}).Hover)

	require.Len(t, *commands, 1)
	assert.Equal(t, target, *(*commands)[0].Target)
}

func TestSessionSurface_Camera(t *testing.T) {
	s, commands := newSurface()
	assert.Equal(t, home, s.Camera())

	moved := entities.Camera{Center: orb.Point{0, 0}, Zoom: 2}
	s.MoveCamera(moved)
	assert.Equal(t, moved, s.Camera())
	assert.Empty(t, *commands)

	s.FlyTo(home)
	assert.Equal(t, home, s.Camera())
	require.Len(t, *commands, 1)
	assert.Equal(t, entities.OpFlyTo, (*commands)[0].Op)
}

func TestSessionSurface_Popup(t *testing.T) {
	s, _ := newSurface()

	_, ok := s.Popup()
	assert.False(t, ok)

	s.ShowPopup(entities.Popup{HTML: "first"})
	s.ShowPopup(entities.Popup{HTML: "second"})

	popup, ok := s.Popup()
	assert.True(t, ok)
	assert.Equal(t, "second", popup.HTML)
}

func TestSessionSurface_ReportError(t *testing.T) {
	s, commands := newSurface()

	s.ReportError(nil)
	s.ReportError(errors.New("failed to fetch icon"))

	require.Len(t, *commands, 1)
	assert.Equal(t, entities.Command{Op: entities.OpError, Message: "failed to fetch icon"}, (*commands)[0])
}

func TestSessionSurface_NilSink(t *testing.T) {
	s := infrastructure.NewSessionSurface(home, nil)

	require.NoError(t, s.AddSource("venues", entities.Source{Type: "vector"}))
	s.FlyTo(home)
}
