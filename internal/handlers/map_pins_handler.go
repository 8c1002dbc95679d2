package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.mapleapps.campquest/internal/camp"
	"io.mapleapps.campquest/internal/geocode"
	mapmodels "io.mapleapps.campquest/internal/models/map_pins"
)

// MapPins geocodes the named camps' first-session addresses and returns a
// marker per camp that resolved. Failed geocodes are skipped, not errors.
func (h *CampsHandler) MapPins(c *gin.Context) {
	var req mapmodels.MapPinsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	records := h.store.Records()
	if len(req.CampNames) > 0 {
		wanted := make(map[string]struct{}, len(req.CampNames))
		for _, name := range req.CampNames {
			wanted[name] = struct{}{}
		}
		var subset []camp.CampRecord
		for _, record := range records {
			if _, ok := wanted[record.Name]; ok {
				subset = append(subset, record)
			}
		}
		records = subset
	}

	grouped := camp.GroupCamps(records)

	maxPins := req.MaxPins
	if maxPins <= 0 {
		maxPins = defaultMaxMapPins
	}
	skipped := 0
	if len(grouped) > maxPins {
		skipped = len(grouped) - maxPins
		grouped = grouped[:maxPins]
	}

	addresses := make([]string, 0, len(grouped))
	for _, g := range grouped {
		if len(g.Sessions) == 0 {
			continue
		}
		addresses = append(addresses, geocode.FullAddress(g.Sessions[0].Location))
	}

	ctx := context.Background()
	resolved := h.geocoder.GeocodeBatch(ctx, addresses)

	pins := []mapmodels.MapPin{}
	for _, g := range grouped {
		if len(g.Sessions) == 0 {
			skipped++
			continue
		}
		coords, ok := resolved[geocode.FullAddress(g.Sessions[0].Location)]
		if !ok {
			skipped++
			continue
		}
		pins = append(pins, mapmodels.MapPin{Camp: g, Coordinates: coords})
	}

	c.JSON(http.StatusOK, mapmodels.MapPinsResponse{Pins: pins, Skipped: skipped})
}
