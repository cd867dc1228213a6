package repository

import (
	"context"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
	"github.com/paulmach/orb"
)

type VenueRepository interface {
	Import(ctx context.Context, path string) error
	AddVenue(ctx context.Context, venue entities.Venue) (entities.VenueID, error)
	GetVenues(ctx context.Context, bound orb.Bound) ([]entities.Venue, error)
}
