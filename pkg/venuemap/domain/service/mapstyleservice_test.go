package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStyleService_GetMapStyle(t *testing.T) {
	styles := service.NewMapStyleService(markerConfig(), iconConfig(), defaultTable(t))

	style, err := styles.GetMapStyle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, style.Version)
	assert.Equal(t, []float64{-79.3832, 43.6532}, style.Center)
	assert.Equal(t, 12.0, style.Zoom)

	require.Contains(t, style.Sources, service.DefaultVenueSourceID)
	assert.Equal(t, "mapbox://zoezhuoli.bngr19y3", style.Sources[service.DefaultVenueSourceID].URL)

	require.Len(t, style.Layers, 2)
	assert.Equal(t, service.DefaultMarkerLayerID, style.Layers[0].ID)
	assert.Equal(t, "toronto-marker", style.Layers[1].ID)
}

func TestMapStyleService_WithoutIcon(t *testing.T) {
	styles := service.NewMapStyleService(markerConfig(), service.IconConfig{}, defaultTable(t))

	style, err := styles.GetMapStyle(context.Background())
	require.NoError(t, err)
	assert.Len(t, style.Layers, 1)
}

func TestMapStyleService_JSON(t *testing.T) {
	styles := service.NewMapStyleService(markerConfig(), iconConfig(), defaultTable(t))

	style, err := styles.GetMapStyle(context.Background())
	require.NoError(t, err)

	data, err := json.Marshal(style)
	require.NoError(t, err)

	var doc struct {
		Layers []map[string]any `json:"layers"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Layers, 2)

	markers := doc.Layers[0]
	assert.Equal(t, "points-2mn1e9", markers["source-layer"])
	paint := markers["paint"].(map[string]any)
	assert.Equal(t, 0.1, paint["circle-opacity"])
	assert.Equal(t, "match", paint["circle-radius"].([]any)[0])
	assert.Equal(t, "case", paint["circle-color"].([]any)[0])
	assert.NotContains(t, paint, "fill-color")
	assert.Equal(t, "visible", markers["layout"].(map[string]any)["visibility"])
}
