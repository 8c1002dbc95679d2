package handlers

import (
	"context"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"io.mapleapps.campquest/internal/camp"
	"io.mapleapps.campquest/internal/campstore"
	"io.mapleapps.campquest/internal/geocode"
)

// defaultMaxMapPins caps geocoding work per map request.
const defaultMaxMapPins = 20

type CampsHandler struct {
	store    *campstore.Store
	geocoder *geocode.Client
	postgres *pgxpool.Pool
	filterer *camp.Filterer
	logger   *zap.SugaredLogger
}

// NewCampsHandler creates the handler for camp search, detail, facets, and
// map pins. Nearby searches resolve each record's coordinates through the
// cached geocoder; records whose geocode failed stay off nearby results.
func NewCampsHandler(store *campstore.Store, geocoder *geocode.Client, postgres *pgxpool.Pool, logger *zap.SugaredLogger) *CampsHandler {
	h := &CampsHandler{
		store:    store,
		geocoder: geocoder,
		postgres: postgres,
		logger:   logger,
	}

	radius := camp.DefaultNearbyRadiusKm
	if value := os.Getenv("NEARBY_RADIUS_KM"); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil && parsed > 0 {
			radius = parsed
		}
	}

	h.filterer = &camp.Filterer{
		NearbyRadiusKm: radius,
		ResolveCoords: func(record camp.CampRecord) *camp.LatLng {
			coords, _ := geocoder.Geocode(context.Background(), geocode.FullAddress(record.Location))
			return coords
		},
	}

	return h
}
