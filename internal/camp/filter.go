package camp

import (
	"strings"
	"time"

	"io.mapleapps.campquest/internal/geo"
)

// CoordsResolver maps a record to coordinates for nearby filtering, or nil
// when the record's address could not be geocoded. Records without
// resolvable coordinates are left off a nearby search.
type CoordsResolver func(record CampRecord) *LatLng

// DefaultNearbyRadiusKm bounds a "nearby" search when no radius is
// configured.
const DefaultNearbyRadiusKm = 50.0

// Filterer applies the ordered predicate passes over the raw record list.
type Filterer struct {
	// NearbyRadiusKm is the haversine cutoff for nearby searches.
	NearbyRadiusKm float64
	// ResolveCoords supplies per-record coordinates for nearby searches.
	// Nil disables the nearby pass (it keeps nothing, matching the
	// failed-geocode degradation rule).
	ResolveCoords CoordsResolver
}

// Filter narrows records through the keyword, location, date, category,
// price, age-group, and tag passes, in that order. No pass errors;
// malformed record data excludes the record from that pass only. The result
// is ready to hand to GroupCamps.
func (f *Filterer) Filter(records []CampRecord, criteria SearchCriteria, filters FilterState) []CampRecord {
	filtered := make([]CampRecord, len(records))
	copy(filtered, records)

	// Keyword search is suppressed whenever a specific-location or
	// category search is active. Mutually exclusive refinement modes, not
	// compounding filters.
	if criteria.Keyword != "" &&
		criteria.Keyword != "nearby" &&
		criteria.Keyword != "Nearby" &&
		criteria.LocationType != LocationTypeSpecific &&
		len(criteria.SelectedCategories) == 0 {
		keyword := strings.ToLower(criteria.Keyword)
		filtered = keep(filtered, func(record CampRecord) bool {
			if strings.Contains(strings.ToLower(record.Name), keyword) ||
				strings.Contains(strings.ToLower(record.Description), keyword) {
				return true
			}
			for _, tag := range record.Tags {
				if strings.Contains(strings.ToLower(tag), keyword) {
					return true
				}
			}
			return false
		})
	}

	switch {
	case criteria.LocationType == LocationTypeNearby && criteria.LocationCoords != nil:
		filtered = f.filterNearby(filtered, *criteria.LocationCoords)
	case criteria.LocationType == LocationTypeSpecific && criteria.Location != AllLocations:
		filtered = filterSpecificCity(filtered, criteria.Location)
	case criteria.LocationType == LocationTypeAll && criteria.Location != AllLocations:
		filtered = keep(filtered, func(record CampRecord) bool {
			return record.Location.Province == criteria.Location
		})
	}

	if criteria.DateRange != nil {
		filtered = filterDateOverlap(filtered, *criteria.DateRange)
	}

	unionCategories := unionStrings(criteria.SelectedCategories, filters.Categories)
	if len(unionCategories) > 0 {
		filtered = keep(filtered, func(record CampRecord) bool {
			return containsString(unionCategories, record.Category)
		})
	}

	filtered = keep(filtered, func(record CampRecord) bool {
		return record.Price >= filters.PriceRange[0] && record.Price <= filters.PriceRange[1]
	})

	if len(filters.AgeGroups) > 0 {
		filtered = filterAgeGroups(filtered, filters.AgeGroups)
	}

	if len(filters.Tags) > 0 {
		filtered = keep(filtered, func(record CampRecord) bool {
			for _, tag := range filters.Tags {
				if containsString(record.Tags, tag) {
					return true
				}
			}
			return false
		})
	}

	return filtered
}

func (f *Filterer) filterNearby(records []CampRecord, origin LatLng) []CampRecord {
	radius := f.NearbyRadiusKm
	if radius <= 0 {
		radius = DefaultNearbyRadiusKm
	}
	return keep(records, func(record CampRecord) bool {
		if f.ResolveCoords == nil {
			return false
		}
		coords := f.ResolveCoords(record)
		if coords == nil {
			return false
		}
		return geo.HaversineKm(origin.Lat, origin.Lng, coords.Lat, coords.Lng) <= radius
	})
}

func filterSpecificCity(records []CampRecord, location string) []CampRecord {
	locationQuery := strings.ToLower(location)
	return keep(records, func(record CampRecord) bool {
		city := strings.ToLower(record.Location.City)
		province := strings.ToLower(record.Location.Province)

		// "Victoria, BC" and friends resolve to the one known pair.
		if strings.Contains(locationQuery, "victoria") {
			return strings.Contains(city, "victoria") && strings.Contains(province, "bc")
		}

		cityQuery := locationQuery
		if idx := strings.Index(cityQuery, ","); idx >= 0 {
			cityQuery = cityQuery[:idx]
		}
		cityQuery = strings.TrimSpace(strings.TrimSuffix(cityQuery, " bc"))
		return strings.Contains(city, cityQuery)
	})
}

func filterDateOverlap(records []CampRecord, dateRange QueryDateRange) []CampRecord {
	queryStart := startOfDay(dateRange.From)
	queryEnd := endOfDay(dateRange.From)
	if dateRange.To != nil {
		queryEnd = endOfDay(*dateRange.To)
	}

	return keep(records, func(record CampRecord) bool {
		if record.Dates.StartDate.IsZero() || record.Dates.EndDate.IsZero() {
			return false
		}
		campStart := startOfDay(record.Dates.StartDate)
		campEnd := endOfDay(record.Dates.EndDate)
		// Interval overlap, not containment.
		return !campStart.After(queryEnd) && !campEnd.Before(queryStart)
	})
}

func filterAgeGroups(records []CampRecord, ageGroups []string) []CampRecord {
	var selected []AgeInterval
	for _, label := range ageGroups {
		if interval, ok := ExtractAgeRange(label); ok {
			selected = append(selected, interval)
		}
	}

	return keep(records, func(record CampRecord) bool {
		campInterval, ok := ExtractAgeRange(record.AgeRange)
		if !ok {
			return false
		}
		for _, interval := range selected {
			if AgeIntervalsOverlap(campInterval, interval) {
				return true
			}
		}
		return false
	})
}

func keep(records []CampRecord, predicate func(CampRecord) bool) []CampRecord {
	result := records[:0:0]
	for _, record := range records {
		if predicate(record) {
			result = append(result, record)
		}
	}
	return result
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	var union []string
	for _, value := range append(append([]string{}, a...), b...) {
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		union = append(union, value)
	}
	return union
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}
