package camp

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Location type values accepted in SearchCriteria.
const (
	LocationTypeAll      = "all"
	LocationTypeNearby   = "nearby"
	LocationTypeSpecific = "specific"
)

// AllLocations is the sentinel meaning no province restriction.
const AllLocations = "ALL"

// QueryDateRange is the searched date window. To may be nil, in which case
// the window collapses to the single From day.
type QueryDateRange struct {
	From time.Time  `json:"from"`
	To   *time.Time `json:"to,omitempty"`
}

// SearchCriteria is the request-scoped search state, built from URL query
// parameters and mutated by search controls. Never persisted.
type SearchCriteria struct {
	Keyword            string          `json:"keyword"`
	Location           string          `json:"location"`
	LocationType       string          `json:"locationType"`
	LocationCoords     *LatLng         `json:"locationCoords,omitempty"`
	DateRange          *QueryDateRange `json:"dateRange,omitempty"`
	SelectedCategories []string        `json:"selectedCategories,omitempty"`
}

// FilterState is the sidebar filter selection, logically unioned with
// SearchCriteria during filtering.
type FilterState struct {
	Categories []string   `json:"categories"`
	PriceRange [2]float64 `json:"priceRange"`
	AgeGroups  []string   `json:"ageGroups"`
	Tags       []string   `json:"tags"`
}

// DefaultFilterState returns the untouched sidebar state.
func DefaultFilterState() FilterState {
	return FilterState{
		Categories: []string{},
		PriceRange: DefaultPriceRange,
		AgeGroups:  []string{},
		Tags:       []string{},
	}
}

// ParseSearchCriteria builds the initial SearchCriteria from URL query
// parameters: keyword, location, dateFrom, dateTo, lat, lng, locationType,
// categories (comma-joined). Malformed values are ignored rather than
// rejected.
func ParseSearchCriteria(query url.Values) SearchCriteria {
	criteria := SearchCriteria{
		Keyword:      query.Get("keyword"),
		Location:     AllLocations,
		LocationType: LocationTypeAll,
	}

	if location := query.Get("location"); location != "" {
		criteria.Location = location
	}

	switch query.Get("locationType") {
	case LocationTypeNearby:
		criteria.LocationType = LocationTypeNearby
	case LocationTypeSpecific:
		criteria.LocationType = LocationTypeSpecific
	}

	latStr, lngStr := query.Get("lat"), query.Get("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			criteria.LocationCoords = &LatLng{Lat: lat, Lng: lng}
		}
	}

	if fromStr := query.Get("dateFrom"); fromStr != "" {
		if from, err := parseQueryDate(fromStr); err == nil {
			dateRange := &QueryDateRange{From: from}
			if toStr := query.Get("dateTo"); toStr != "" {
				if to, err := parseQueryDate(toStr); err == nil {
					dateRange.To = &to
				}
			}
			criteria.DateRange = dateRange
		}
	}

	if categoriesStr := query.Get("categories"); categoriesStr != "" {
		var categories []string
		for _, category := range strings.Split(categoriesStr, ",") {
			if trimmed := strings.TrimSpace(category); trimmed != "" {
				categories = append(categories, trimmed)
			}
		}
		criteria.SelectedCategories = categories
	}

	return criteria
}

func parseQueryDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
