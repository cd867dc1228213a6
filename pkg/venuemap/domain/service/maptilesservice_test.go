package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/service"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/maptile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVenues struct {
	venues []entities.Venue
	err    error
}

func (f *fakeVenues) Import(context.Context, string) error {
	return nil
}

func (f *fakeVenues) AddVenue(_ context.Context, venue entities.Venue) (entities.VenueID, error) {
	f.venues = append(f.venues, venue)
	return venue.ID, nil
}

func (f *fakeVenues) GetVenues(_ context.Context, bound orb.Bound) ([]entities.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}

	var out []entities.Venue
	for _, v := range f.venues {
		if bound.Contains(v.Location) {
			out = append(out, v)
		}
	}
	return out, nil
}

func torontoVenues() *fakeVenues {
	return &fakeVenues{venues: []entities.Venue{
		{ID: 42, Type: "Concert hall", Name: "Massey Hall", Tel: "+1 416-872-4255", Website: "https://masseyhall.com", Location: orb.Point{-79.3788, 43.6542}},
		{ID: 7, Type: "Center", Name: "Center", Location: orb.Point{-79.3832, 43.6532}},
	}}
}

func TestMapTilesService_GetMapTile(t *testing.T) {
	tiles := service.NewMapTilesService(torontoVenues(), service.DefaultVenueSourceLayer)
	tile := maptile.At(orb.Point{-79.3832, 43.6532}, 12)

	data, err := tiles.GetMapTile(context.Background(), tile, false)
	require.NoError(t, err)

	layers, err := mvt.Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, layers, 1)
	assert.Equal(t, service.DefaultVenueSourceLayer, layers[0].Name)
	require.Len(t, layers[0].Features, 2)

	byName := map[string]any{}
	for _, f := range layers[0].Features {
		byName[f.Properties.MustString("Name")] = f.ID
	}
	assert.EqualValues(t, 42, byName["Massey Hall"])
	assert.EqualValues(t, 7, byName["Center"])
}

func TestMapTilesService_Gzipped(t *testing.T) {
	tiles := service.NewMapTilesService(torontoVenues(), service.DefaultVenueSourceLayer)
	tile := maptile.At(orb.Point{-79.3832, 43.6532}, 12)

	data, err := tiles.GetMapTile(context.Background(), tile, true)
	require.NoError(t, err)

	layers, err := mvt.UnmarshalGzipped(data)
	require.NoError(t, err)
	require.Len(t, layers, 1)
	assert.Len(t, layers[0].Features, 2)
}

func TestMapTilesService_EmptyTile(t *testing.T) {
	tiles := service.NewMapTilesService(torontoVenues(), service.DefaultVenueSourceLayer)
	tile := maptile.At(orb.Point{2.35, 48.85}, 12)

	data, err := tiles.GetMapTile(context.Background(), tile, false)
	require.NoError(t, err)

	layers, err := mvt.Unmarshal(data)
	require.NoError(t, err)
	for _, layer := range layers {
		assert.Empty(t, layer.Features)
	}
}

func TestMapTilesService_RepositoryError(t *testing.T) {
	tiles := service.NewMapTilesService(&fakeVenues{err: errors.New("db down")}, service.DefaultVenueSourceLayer)

	_, err := tiles.GetMapTile(context.Background(), maptile.New(0, 0, 0), false)
	assert.Error(t, err)
}
